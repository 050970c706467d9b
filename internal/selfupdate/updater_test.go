package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin is a universal binary", "darwin", "amd64", "sukulu_Darwin_all.tar.gz", false},
		{"darwin arm64 same asset", "darwin", "arm64", "sukulu_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "sukulu_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "sukulu_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "sukulu_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "sukulu_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "sukulu_Windows_arm64.zip", false},
		{"unsupported os", "plan9", "amd64", "", true},
		{"unsupported arch", "linux", "riscv64", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuntimeAssetIsSupported(t *testing.T) {
	// Whatever platform the suite runs on must resolve to a real asset,
	// since TestUpdate serves the archive under that name.
	asset, err := assetName()
	require.NoError(t, err)
	assert.Contains(t, asset, "sukulu_")
}

func TestParseChecksums(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "two assets",
			input: "1a2b  sukulu_Linux_x86_64.tar.gz\n3c4d  sukulu_Windows_x86_64.zip\n",
			want: map[string]string{
				"sukulu_Linux_x86_64.tar.gz": "1a2b",
				"sukulu_Windows_x86_64.zip":  "3c4d",
			},
		},
		{
			name:  "empty file",
			input: "",
			want:  map[string]string{},
		},
		{
			name:  "malformed lines skipped",
			input: "1a2b  good.tar.gz\njusthash\n   \na b c\n3c4d  also-good.zip\n",
			want: map[string]string{
				"good.tar.gz":   "1a2b",
				"also-good.zip": "3c4d",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseChecksums([]byte(tt.input)))
		})
	}
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("release payload")
	sum := sha256.Sum256(data)

	t.Run("match", func(t *testing.T) {
		assert.NoError(t, verifyChecksum(data, hex.EncodeToString(sum[:])))
	})

	t.Run("mismatch", func(t *testing.T) {
		err := verifyChecksum(data, strings.Repeat("0", 64))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrChecksum)
	})
}

func TestExtractBinary(t *testing.T) {
	content := []byte("#!/bin/sh\necho sukulu")

	t.Run("tar.gz asset", func(t *testing.T) {
		archive := buildTarGz(t, "sukulu", content)
		got, err := extractBinary(archive, "sukulu_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("zip asset looks for the exe", func(t *testing.T) {
		archive := buildZip(t, "sukulu.exe", content)
		got, err := extractBinary(archive, "sukulu_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("binary missing from archive", func(t *testing.T) {
		archive := buildTarGz(t, "LICENSE", content)
		_, err := extractBinary(archive, "sukulu_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	t.Run("replaces binary and keeps permissions", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "sukulu")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

		newData := []byte("new-binary-content")
		sum := sha256.Sum256(newData)
		require.NoError(t, applyUpdate(newData, target, sum[:]))

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, newData, got)

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	})

	t.Run("rejects a hash mismatch on re-read", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "sukulu")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

		wrongHash := sha256.Sum256([]byte("something else"))
		err := applyUpdate([]byte("new-binary-content"), target, wrongHash[:])
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrChecksum)

		// The original binary must be untouched.
		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, []byte("old"), got)
	})
}

func TestUpdate(t *testing.T) {
	// The updater picks the asset for the platform the test runs on, so
	// the fake release must be published under that same name.
	asset, err := assetName()
	require.NoError(t, err)

	binaryContent := []byte("new-sukulu-binary")
	archive := buildArchive(t, asset, binaryContent)
	archiveSum := sha256.Sum256(archive)
	goodChecksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveSum[:]), asset)

	t.Run("happy path", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "sukulu")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := releaseServer(t, "v2.0.0", asset, archive, []byte(goodChecksums))

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)

		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := releaseServer(t, "v1.0.0", asset, archive, []byte(goodChecksums))

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		badChecksums := fmt.Sprintf("%s  %s\n", strings.Repeat("0", 64), asset)
		server := releaseServer(t, "v2.0.0", asset, archive, []byte(badChecksums))

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("archive missing from release", func(t *testing.T) {
		server := releaseServer(t, "v2.0.0", asset, nil, []byte(goodChecksums))

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// releaseServer fakes the GitHub releases API and asset downloads for
// one tag. A nil archive leaves the asset unpublished (404).
func releaseServer(t *testing.T, tag, asset string, archive, checksums []byte) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/mchawi/sukulu/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
	})
	if archive != nil {
		mux.HandleFunc("/mchawi/sukulu/releases/download/"+tag+"/"+asset, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(archive)
		})
	}
	mux.HandleFunc("/mchawi/sukulu/releases/download/"+tag+"/checksums.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(checksums)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// buildArchive packages content the way the release for asset would:
// a zip holding sukulu.exe for Windows assets, a tar.gz holding sukulu
// otherwise.
func buildArchive(t *testing.T, asset string, content []byte) []byte {
	t.Helper()
	if strings.HasSuffix(asset, ".zip") {
		return buildZip(t, "sukulu.exe", content)
	}
	return buildTarGz(t, "sukulu", content)
}

func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
