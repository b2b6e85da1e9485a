package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/memok/internal/logging"
	"github.com/mesh-intelligence/memok/pkg/memok"
	"github.com/mesh-intelligence/memok/pkg/store"
)

// env is what a command handler works with.
type env struct {
	session        *memok.Session
	out            io.Writer
	birthdayWindow int
}

// openEnv resolves settings, attaches the configured store and loads both
// collections. The caller must call close.
func (a *app) openEnv(cmd *cobra.Command) (*env, func(), error) {
	s, err := a.resolveSettings()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(s.logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, sysErr("logging: %w", err)
	}

	st, err := store.Open(s.storeConfig(), logger)
	if err != nil {
		return nil, nil, &systemError{err: err}
	}

	session := memok.Open(st, memok.WithLogger(logger))
	for _, w := range session.Warnings() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v (changes to it will not be saved)\n", w)
	}

	e := &env{
		session:        session,
		out:            cmd.OutOrStdout(),
		birthdayWindow: s.birthdayWindow,
	}
	closeFn := func() {
		closeSession(session, logger)
		_ = logger.Sync()
	}
	return e, closeFn, nil
}

// closeSession detaches the store. A failure is logged; the command's
// result stands.
func closeSession(session *memok.Session, logger *zap.Logger) {
	if err := session.Close(); err != nil {
		logger.Warn("closing store failed", zap.Error(err))
	}
}
