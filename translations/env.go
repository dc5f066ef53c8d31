package translations

import (
	"io"
	"os"

	"github.com/napalu/ngx-i18n-scan/logging"
	"github.com/napalu/ngx-i18n-scan/options"
	"github.com/napalu/ngx-i18n-scan/report"
	"github.com/napalu/ngx-i18n-scan/util"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Env is what a command reads from and writes to
type Env struct {
	Fs          afero.Fs
	Dir         string // catalogs are discovered below Dir
	Out         io.Writer
	In          io.Reader
	Log         io.Writer
	Interactive bool
}

// OSEnv returns the process environment
func OSEnv() Env {
	return Env{
		Fs:          afero.NewOsFs(),
		Dir:         ".",
		Out:         os.Stdout,
		In:          os.Stdin,
		Log:         os.Stderr,
		Interactive: util.IsInteractive(util.DefaultTerminal, os.Stdin, os.Stdout),
	}
}

type session struct {
	cfg *options.AppConfig
	env Env
	log zerolog.Logger
	rep *report.Reporter
}

func newSession(cfg *options.AppConfig, env Env) (*session, error) {
	log, err := logging.New(env.Log, cfg.LogLevel, cfg.Verbose)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, env: env, log: log, rep: report.New(env.Out, cfg.TR)}, nil
}

func (s *session) selector() Selector {
	return Selector{TR: s.cfg.TR, Out: s.env.Out, In: s.env.In, Interactive: s.env.Interactive}
}

func (s *session) workDir() string {
	if s.env.Dir == "" {
		return "."
	}
	return s.env.Dir
}

func (s *session) srcDir() string {
	if s.cfg.Src == "" {
		return "."
	}
	return s.cfg.Src
}

func (s *session) backup() *util.BackupSession {
	if s.cfg.NoBackup {
		return nil
	}
	return util.NewBackupSession(s.env.Fs, s.cfg.BackupDir)
}
