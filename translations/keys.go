package translations

import (
	"github.com/napalu/goopt/v2"
	"github.com/napalu/ngx-i18n-scan/errors"
	"github.com/napalu/ngx-i18n-scan/options"
	"github.com/napalu/ngx-i18n-scan/scanner"
)

func Keys(parser *goopt.Parser, _ *goopt.Command) error {
	cfg, ok := goopt.GetStructCtxAs[*options.AppConfig](parser)
	if !ok {
		return errors.ErrFailedToGetConfig
	}
	return RunKeys(cfg, OSEnv())
}

// RunKeys prints the sorted translation keys referenced below the source dir
func RunKeys(cfg *options.AppConfig, env Env) error {
	s, err := newSession(cfg, env)
	if err != nil {
		return err
	}
	src := s.srcDir()
	keys, err := scanner.NewExtractor(env.Fs, s.log).ExtractKeysFromSource(src)
	if err != nil {
		return err
	}
	s.rep.Keys(src, keys)
	return nil
}

func Catalogs(parser *goopt.Parser, _ *goopt.Command) error {
	cfg, ok := goopt.GetStructCtxAs[*options.AppConfig](parser)
	if !ok {
		return errors.ErrFailedToGetConfig
	}
	return RunCatalogs(cfg, OSEnv())
}

// RunCatalogs prints the translation files discovery would choose from
func RunCatalogs(cfg *options.AppConfig, env Env) error {
	s, err := newSession(cfg, env)
	if err != nil {
		return err
	}
	found := FindCatalogs(env.Fs, s.workDir(), s.log)
	if len(found) == 0 {
		return errors.ErrNoCatalogFound
	}
	s.rep.Catalogs(found)
	return nil
}
