package repository

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracingProductRepository wraps any ProductRepository with spans
type TracingProductRepository struct {
	next   domain.ProductRepository
	source string
}

// NewTracingProductRepository decorates next; source names the backing store in span attributes
func NewTracingProductRepository(next domain.ProductRepository, source string) *TracingProductRepository {
	return &TracingProductRepository{next: next, source: source}
}

func (r *TracingProductRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.ListProducts",
		trace.WithAttributes(
			attribute.String("catalog.source", r.source),
			attribute.String("query.category", filter.Category),
			attribute.String("query.search", filter.Search),
		),
	)
	defer span.End()

	products, err := r.next.ListProducts(ctx, filter)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func (r *TracingProductRepository) FindProduct(ctx context.Context, id domain.ID) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindProduct",
		trace.WithAttributes(
			attribute.String("catalog.source", r.source),
			attribute.String("product.id", id.String()),
		),
	)
	defer span.End()

	product, err := r.next.FindProduct(ctx, id)
	if err != nil {
		// a miss is an expected outcome, not a span error
		if errors.Is(err, domain.ErrProductNotFound) {
			span.SetAttributes(attribute.Bool("product.found", false))
			return nil, err
		}
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Bool("product.found", true),
		attribute.String("product.brand", product.Brand),
		attribute.String("product.category", product.Category),
	)
	return product, nil
}

func (r *TracingProductRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	ctx, span := tracer.Start(ctx, "repository.ListCategories",
		trace.WithAttributes(attribute.String("catalog.source", r.source)),
	)
	defer span.End()

	categories, err := r.next.ListCategories(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(categories)))
	return categories, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
