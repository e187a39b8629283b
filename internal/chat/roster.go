package chat

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// NameResolver resolves a participant's display name.
type NameResolver interface {
	ResolveName(ctx context.Context, h Handle) (string, error)
}

// ResolveRoster resolves every handle's name in parallel and joins the
// results preserving input order. The first lookup error cancels the rest
// and fails the whole roster: no partial result is ever returned.
func ResolveRoster(ctx context.Context, resolver NameResolver, handles []Handle) ([]string, error) {
	names := make([]string, len(handles))

	g, gCtx := errgroup.WithContext(ctx)
	for i, h := range handles {
		i, h := i, h
		g.Go(func() error {
			name, err := resolver.ResolveName(gCtx, h)
			if err != nil {
				return err
			}
			names[i] = name
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return names, nil
}
