package usecase

import (
	"context"
	"errors"
	"strings"

	"jasper/internal/assistant"
	"jasper/internal/connector"
	"jasper/internal/indexer"
	"jasper/internal/model"
)

// Open opens an item on the backend named by its provider. View-only
// backends and missing IDs are ignored rather than failed.
func (uc *implUseCase) Open(ctx context.Context, input assistant.OpenInput) (assistant.OpenOutput, error) {
	key, ok := openKey(input.Provider)
	if !ok || input.ID == "" {
		return assistant.OpenOutput{Status: assistant.OpenStatusIgnored, Message: MsgOpenIgnored}, nil
	}

	msg, err := uc.registry.Open(ctx, key, input.ID)
	if errors.Is(err, connector.ErrOpenUnsupported) || errors.Is(err, connector.ErrNotRegistered) {
		return assistant.OpenOutput{Status: assistant.OpenStatusIgnored, Message: err.Error()}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "%s.Open: %s %s: %v", LogPrefix, key, input.ID, err)
		return assistant.OpenOutput{}, err
	}
	return assistant.OpenOutput{Status: assistant.OpenStatusOK, Message: msg}, nil
}

func openKey(provider string) (connector.Key, bool) {
	switch model.Provider(strings.ToUpper(strings.TrimSpace(provider))) {
	case model.ProviderOutlook:
		return connector.KeyMailOutlook, true
	case model.ProviderGmail, "":
		return connector.KeyMailGmail, true
	case model.ProviderFiles:
		return connector.KeyFiles, true
	}
	return "", false
}

// IndexStatus reads the indexer's status file.
func (uc *implUseCase) IndexStatus(ctx context.Context) model.IndexStatus {
	st, err := indexer.ReadStatus(uc.statusFile)
	if err != nil {
		uc.l.Warnf(ctx, "%s.IndexStatus: %v", LogPrefix, err)
		return model.IndexStatus{Percent: 0, Status: model.IndexStatusError, Error: err.Error()}
	}
	return st
}
