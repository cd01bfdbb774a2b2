package ports

import "go.trai.ch/dispatch/internal/core/domain"

// BuildHistoryStore records submitted builds locally.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildHistoryStore interface {
	// Put stores the record.
	Put(record domain.BuildRecord) error
}
