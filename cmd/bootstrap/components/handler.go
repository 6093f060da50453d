package components

import (
	"tutorlink/internal/handler"
	"tutorlink/internal/handler/api"
	"tutorlink/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOfferHandler,
		api.NewSessionHandler,
		api.NewReviewHandler,
		api.NewLedgerHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	offer *api.OfferHandler,
	session *api.SessionHandler,
	review *api.ReviewHandler,
	ledger *api.LedgerHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Offer:   offer,
		Session: session,
		Review:  review,
		Ledger:  ledger,
	}
}
