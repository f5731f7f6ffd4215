package postgres

import (
	"context"
	"easyrent/pkg/domain"
	"easyrent/pkg/storage"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	reviewsTable        = "reviews"
	reviewTagLinksTable = "review_tag_links"
)

func (p *PgSQL) reviews() *goqu.SelectDataset {
	return p.Builder.From(goqu.T(reviewsTable).As("r")).
		Select(
			goqu.L("r.*"),
			goqu.L(`COALESCE((SELECT json_agg(t.tag_id ORDER BY t.tag_id) FROM review_tag_links t `+
				`WHERE t.review_id = r.id), '[]'::json)`).As("tags"),
		)
}

func (p *PgSQL) replaceReviewTags(ctx context.Context, id uuid.UUID, tagIDs []int64) error {
	if _, err := p.Builder.Delete(reviewTagLinksTable).
		Where(goqu.I("review_id").Eq(id)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete review tags in pg: %w", err)
	}
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]goqu.Record, 0, len(tagIDs))
	seen := make(map[int64]struct{}, len(tagIDs))
	for _, tagID := range tagIDs {
		if _, ok := seen[tagID]; ok {
			continue
		}
		seen[tagID] = struct{}{}
		rows = append(rows, goqu.Record{"review_id": id, "tag_id": tagID})
	}
	if _, err := p.Builder.Insert(reviewTagLinksTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store review tags into pg: %w", mapError(err))
	}

	return nil
}

func (p *PgSQL) StoreReview(ctx context.Context, review domain.Review) (*domain.Review, error) {
	var row PgReview
	row.FromDomain(review)

	var id uuid.UUID
	if _, err := p.Builder.Insert(reviewsTable).
		Rows(row).
		Returning("id").
		Executor().ScanValContext(ctx, &id); err != nil {
		return nil, fmt.Errorf("could not store review into pg: %w", mapError(err))
	}

	if err := p.replaceReviewTags(ctx, id, review.TagIDs); err != nil {
		return nil, err
	}

	return p.ReviewByID(ctx, domain.ReviewID(id))
}

func (p *PgSQL) ReviewByID(ctx context.Context, id domain.ReviewID) (*domain.Review, error) {
	var row PgReview
	found, err := p.reviews().
		Where(goqu.I("r.id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch review by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) Reviews(ctx context.Context, filter storage.ReviewFilter) ([]domain.Review, error) {
	var w []goqu.Expression
	if filter.AuthorID != nil {
		w = append(w, goqu.I("r.author_id").Eq(uuid.UUID(*filter.AuthorID)))
	}
	if filter.TargetID != nil {
		w = append(w, goqu.I("r.target_id").Eq(uuid.UUID(*filter.TargetID)))
	}

	ds := p.reviews().
		Where(w...).
		Order(goqu.I("r.created_at").Desc(), goqu.I("r.id").Desc())
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		ds = ds.Offset(filter.Offset)
	}

	var rows []PgReview
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch reviews from pg: %w", err)
	}

	out := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		r, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *r)
	}

	return out, nil
}

func (p *PgSQL) UpdateReview(ctx context.Context, review domain.Review) (*domain.Review, error) {
	var id uuid.UUID
	found, err := p.Builder.Update(reviewsTable).
		Set(goqu.Record{
			"rating":      review.Rating,
			"description": review.Description,
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(review.ID))).
		Returning("id").
		Executor().ScanValContext(ctx, &id)
	if err != nil {
		return nil, fmt.Errorf("could not update review in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	if err := p.replaceReviewTags(ctx, id, review.TagIDs); err != nil {
		return nil, err
	}

	return p.ReviewByID(ctx, review.ID)
}

func (p *PgSQL) DeleteReview(ctx context.Context, id domain.ReviewID) (bool, error) {
	res, err := p.Builder.Delete(reviewsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete review in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) TargetTagCount(ctx context.Context, targetID domain.UserID) (int64, error) {
	var count int64
	if _, err := p.Builder.From(goqu.T(reviewTagLinksTable).As("t")).
		Join(goqu.T(reviewsTable).As("r"), goqu.On(goqu.I("r.id").Eq(goqu.I("t.review_id")))).
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.I("r.target_id").Eq(uuid.UUID(targetID))).
		Executor().ScanValContext(ctx, &count); err != nil {
		return 0, fmt.Errorf("could not count target tags in pg: %w", err)
	}

	return count, nil
}
