package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/searn/hubadmin/internal/domain"
)

func platformName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > domain.MaxNameLength {
		return "", fmt.Errorf("%w: platform name", domain.ErrInvalidInput)
	}
	return name, nil
}

// CreatePlatform adds a game platform.
func (uc *ConsoleUseCase) CreatePlatform(ctx context.Context, sess *domain.Session, name string) (*domain.Platform, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	if err := uc.access.Authorize(ctx, sess.Principal, domain.ResourcePlatform, nil, domain.ActionCreate); err != nil {
		return nil, err
	}
	name, err := platformName(name)
	if err != nil {
		return nil, err
	}
	created, err := uc.backend.CreatePlatform(ctx, sess.Token, name)
	if err != nil {
		return nil, err
	}
	uc.invalidatePlatforms(ctx)
	return created, nil
}

// RenamePlatform renames a game platform.
func (uc *ConsoleUseCase) RenamePlatform(ctx context.Context, sess *domain.Session, id, name string) (*domain.Platform, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	inst := (&domain.Platform{ID: id}).Instance()
	if err := uc.access.Authorize(ctx, sess.Principal, domain.ResourcePlatform, inst, domain.ActionEdit); err != nil {
		return nil, err
	}
	name, err := platformName(name)
	if err != nil {
		return nil, err
	}
	updated, err := uc.backend.UpdatePlatform(ctx, sess.Token, id, name)
	if err != nil {
		return nil, err
	}
	uc.invalidatePlatforms(ctx)
	return updated, nil
}

// DeletePlatform removes a game platform.
func (uc *ConsoleUseCase) DeletePlatform(ctx context.Context, sess *domain.Session, id string) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	inst := (&domain.Platform{ID: id}).Instance()
	if err := uc.access.Authorize(ctx, sess.Principal, domain.ResourcePlatform, inst, domain.ActionDelete); err != nil {
		return err
	}
	if err := uc.backend.DeletePlatform(ctx, sess.Token, id); err != nil {
		return err
	}
	uc.invalidatePlatforms(ctx)
	return nil
}
