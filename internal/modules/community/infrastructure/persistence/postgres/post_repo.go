package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/saransh1220/flowart/internal/modules/community/domain"
)

const postColumns = `p.id, p.type, p.author_id, u.name AS author, p.title, p.content,
		p.tags, p.likes, p.comments, p.created_at`

// postRow scans the text[] tags column, which domain.Post leaves to the driver.
type postRow struct {
	domain.Post
	Tags pq.StringArray `db:"tags"`
}

func (r postRow) toDomain() domain.Post {
	p := r.Post
	p.Tags = []string(r.Tags)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}

type PgPostRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PgPostRepository {
	return &PgPostRepository{db: db}
}

func (r *PgPostRepository) List(ctx context.Context, filter domain.Filter) ([]domain.Post, error) {
	filter = filter.Normalized()

	query := `SELECT ` + postColumns + ` FROM community_posts p JOIN users u ON u.id = p.author_id WHERE 1=1`
	args := []interface{}{}
	argID := 1

	if filter.Tag != domain.All {
		query += fmt.Sprintf(" AND $%d = ANY(p.tags)", argID)
		args = append(args, filter.Tag)
		argID++
	}

	if filter.Type != domain.All {
		query += fmt.Sprintf(" AND p.type = $%d", argID)
		args = append(args, filter.Type)
	}

	query += " ORDER BY p.created_at DESC, p.id ASC"

	var rows []postRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts := make([]domain.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toDomain())
	}
	return posts, nil
}

func (r *PgPostRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO community_posts (id, type, author_id, title, content, tags, likes, comments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Type, post.AuthorID, post.Title, post.Content,
		pq.Array(post.Tags), post.Likes, post.Comments, post.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (r *PgPostRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM community_posts`); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}
