//go:build !windows
// +build !windows

package pkg

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/config"
)

func writeHostKey(t *testing.T) string {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "id_rsa")
	data := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestNewServer(t *testing.T) {
	log, _ := test.NewNullLogger()
	cfg := config.SSHConfig{HostKey: writeHostKey(t), Viewer: "/usr/local/bin/bagfill"}

	s, err := NewServer(cfg, []string{"-tui"}, log)
	require.NoError(t, err)
	assert.Equal(t, SshPort, s.Addr)
	assert.Equal(t, []string{"-tui"}, s.Args)

	cfg.Listen = "127.0.0.1:0"
	s, err = NewServer(cfg, nil, log)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", s.Addr)
}

func TestNewServerErrors(t *testing.T) {
	log, _ := test.NewNullLogger()

	_, err := NewServer(config.SSHConfig{}, nil, log)
	assert.ErrorIs(t, err, ErrNoViewer)

	cfg := config.SSHConfig{HostKey: filepath.Join(t.TempDir(), "missing"), Viewer: "bagfill"}
	_, err = NewServer(cfg, nil, log)
	assert.Error(t, err)
}
