package components

import (
	"eventora/internal/infra/cache"
	"eventora/internal/infra/db"
	"eventora/internal/infra/readstore"
	"eventora/internal/infra/uow"
	"eventora/internal/usecase/commands"
	"eventora/internal/usecase/queries"
	"eventora/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		cache.NewStore,
		fx.Annotate(
			uow.NewPostgresUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestQueryService)),
		),
		fx.Annotate(
			readstore.NewMessageReadStore,
			fx.As(new(queries.MessageQueryService)),
		),
		fx.Annotate(
			readstore.NewGalleryReadStore,
			fx.As(new(queries.GalleryQueryService)),
		),
		fx.Annotate(
			readstore.NewPromotionReadStore,
			fx.As(new(queries.PromotionQueryService)),
		),
		// Calendar and review reads go through the cache layer, which also
		// serves as the invalidation port for the write side.
		readstore.NewCalendarReadStore,
		readstore.NewReviewReadStore,
		fx.Annotate(
			NewCalendarQueries,
			fx.As(new(queries.CalendarQueryService)),
			fx.As(new(commands.AvailabilityInvalidator)),
		),
		fx.Annotate(
			NewReviewQueries,
			fx.As(new(queries.ReviewQueryService)),
			fx.As(new(commands.ReviewStatsInvalidator)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCalendarQueries(inner *readstore.CalendarReadStore, store *cache.Store) *cache.CachedCalendarQueries {
	return cache.NewCachedCalendarQueries(inner, store)
}

func NewReviewQueries(inner *readstore.ReviewReadStore, store *cache.Store) *cache.CachedReviewQueries {
	return cache.NewCachedReviewQueries(inner, store)
}
