package trustedsetup

import (
	"fmt"
	"os"
	"sync"

	"github.com/vocdoni/go-kzg4844/kzgerr"
)

var (
	defaultOnce  sync.Once
	defaultSetup *Setup
	defaultErr   error
)

// Default returns the lazily-initialized, process-wide default trusted
// setup, loaded once from the path returned by pathResolver on the first
// call (cmd/kzgverify passes config.TrustedSetupPath); later calls return
// the first call's result without invoking their resolver.
// Grounded on original_source/src/trusted_setup.rs's EnvKzgSettings::get(),
// rendered with sync.Once instead of spin::Once: initialization is
// idempotent, so concurrent callers synchronize on one canonical object.
func Default(pathResolver func() (string, error)) (*Setup, error) {
	defaultOnce.Do(func() {
		path, err := pathResolver()
		if err != nil {
			defaultErr = fmt.Errorf("%w: resolving default trusted setup path: %v", kzgerr.ErrInvalidTrustedSetup, err)
			return
		}
		f, err := os.Open(path)
		if err != nil {
			defaultErr = fmt.Errorf("%w: opening trusted setup %q: %v", kzgerr.ErrInvalidTrustedSetup, path, err)
			return
		}
		defer f.Close()

		setup, err := ParseTextSetup(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultSetup = setup
	})
	return defaultSetup, defaultErr
}
