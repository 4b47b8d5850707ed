//go:build !windows
// +build !windows

package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
	gossh "golang.org/x/crypto/ssh"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/config"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SshPort           = ":2222"
)

var ErrNoViewer = errors.New("no viewer binary configured")

// Server lets remote level designers browse results over SSH. Every session
// runs its own viewer process behind a pseudo-terminal.
type Server struct {
	*ssh.Server

	Viewer string
	Args   []string
	log    logrus.FieldLogger
}

func NewServer(cfg config.SSHConfig, args []string, log logrus.FieldLogger) (*Server, error) {
	if cfg.Viewer == "" {
		return nil, ErrNoViewer
	}

	addr := cfg.Listen
	if addr == "" {
		addr = SshPort
	}

	s := &Server{Viewer: cfg.Viewer, Args: args, log: log}
	s.Server = &ssh.Server{
		Addr:        addr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	hostKey := cfg.HostKey
	if hostKey == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate host key: %w", err)
		}
		hostKey = path.Join(homeDir, ".ssh", "id_rsa")
	}
	if err := s.SetOption(ssh.HostKeyFile(hostKey)); err != nil {
		return nil, fmt.Errorf("failed to load host key %s: %w", hostKey, err)
	}

	return s, nil
}

func (s *Server) handle(sess ssh.Session) {
	log := s.log.WithFields(logrus.Fields{"user": sess.User(), "remote": sess.RemoteAddr().String()})

	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.Viewer, s.Args...)
	cmd.Env = append(os.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		log.WithError(err).Error("failed to start viewer")
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()
	log.Info("viewer session started")

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, winsize(win)); err != nil {
				log.WithError(err).Debug("resize failed")
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cancelCmd()
	if err := cmd.Wait(); err != nil {
		log.WithError(err).Debug("viewer exited")
	}
	log.Info("viewer session ended")
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(w.Height), Cols: uint16(w.Width)}
}
