package repository

import (
	"context"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/jackc/pgx/v5"
)

type TeamMemberRepository struct {
	db DBTX
}

func NewTeamMemberRepository(db DBTX) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

const teamMemberColumns = `id, name, position, email, phone, status, join_date, bio, created_at, updated_at`

func scanTeamMember(row pgx.Row, member *models.TeamMember) error {
	return row.Scan(
		&member.ID,
		&member.Name,
		&member.Position,
		&member.Email,
		&member.Phone,
		&member.Status,
		&member.JoinDate,
		&member.Bio,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
}

func (r *TeamMemberRepository) Create(ctx context.Context, member *models.TeamMember) error {
	query := `
		INSERT INTO team_members (name, position, email, phone, status, join_date, bio)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		member.Name,
		member.Position,
		member.Email,
		member.Phone,
		member.Status,
		member.JoinDate,
		member.Bio,
	).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
}

func (r *TeamMemberRepository) GetAll(ctx context.Context) ([]models.TeamMember, error) {
	query := `
		SELECT ` + teamMemberColumns + `
		FROM team_members
		ORDER BY join_date ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]models.TeamMember, 0)
	for rows.Next() {
		var member models.TeamMember
		if err := scanTeamMember(rows, &member); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, id int64) (*models.TeamMember, error) {
	query := `
		SELECT ` + teamMemberColumns + `
		FROM team_members
		WHERE id = $1
	`
	var member models.TeamMember
	if err := scanTeamMember(r.db.QueryRow(ctx, query, id), &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *TeamMemberRepository) Update(ctx context.Context, member *models.TeamMember) error {
	query := `
		UPDATE team_members
		SET name = $2, position = $3, email = $4, phone = $5, status = $6, join_date = $7, bio = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		member.ID,
		member.Name,
		member.Position,
		member.Email,
		member.Phone,
		member.Status,
		member.JoinDate,
		member.Bio,
	).Scan(&member.UpdatedAt)
}

func (r *TeamMemberRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
