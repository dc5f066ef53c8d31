package options

import (
	"os"

	"github.com/google/shlex"
	"github.com/napalu/ngx-i18n-scan/errors"
	"github.com/spf13/afero"
)

// RcFile holds default arguments read from the working directory
const RcFile = ".ngx-i18n-scanrc"

// LoadRcArgs splits the defaults file at path into arguments. A missing file
// yields no arguments. Lines starting with # are comments.
func LoadRcArgs(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.ErrInvalidRcFile.WithArgs(path).Wrap(err)
	}
	args, err := shlex.Split(string(data))
	if err != nil {
		return nil, errors.ErrInvalidRcFile.WithArgs(path).Wrap(err)
	}
	return args, nil
}

// WithRcArgs places rc arguments after the program name so explicit
// command-line arguments come later and win.
func WithRcArgs(argv, rc []string) []string {
	if len(rc) == 0 || len(argv) == 0 {
		return argv
	}
	out := make([]string, 0, len(argv)+len(rc))
	out = append(out, argv[0])
	out = append(out, rc...)
	return append(out, argv[1:]...)
}
