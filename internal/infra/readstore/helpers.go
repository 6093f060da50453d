package readstore

import (
	"log/slog"

	"tutorlink/internal/infra"
	"tutorlink/internal/pkg/pgconv"
)

func wrapReadErr(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, err)
	}
	return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, msg, err)
}
