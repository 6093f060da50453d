package repository

import (
	"log/slog"

	"tutorlink/internal/infra"
)

// wrapErr classifies the pg error and records it with the repository
// error kind so usecases can branch on IsKind without touching pgconn.
func wrapErr(msg string, err error) error {
	return infra.WrapRepoErr(slog.Default(), infra.ClassifyPgError(err), msg, err)
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, nil)
}
