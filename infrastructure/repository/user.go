package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
)

const usersTable = "users"

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, id int) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	DeleteUser(ctx context.Context, id int) error
}

type userRepository struct {
	conn postgres.Queryer
}

func NewUserRepository(conn postgres.Queryer) UserRepository {
	return &userRepository{conn: conn}
}

// CreateUser inserts the user and fills in the generated id and timestamps.
// A duplicate email surfaces as ErrConflict via users_email_key.
func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query, args, err := squirrel.
		Insert(usersTable).
		Columns("email", "hashed_password").
		Values(user.Email, user.HashedPassword).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return translateError("create user", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": id})
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"email": email})
}

func (r *userRepository) getUser(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	query, args, err := squirrel.
		Select("id", "email", "hashed_password", "created_at", "updated_at").
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user domain.User
	err = r.conn.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Email, &user.HashedPassword, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, translateError("get user", err)
	}

	return &user, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id int) error {
	query, args, err := squirrel.
		Delete(usersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError("delete user", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return translateError("delete user", err)
	}
	if affected == 0 {
		return domain.NewWarehouseError("delete user", domain.ErrNotFound, "")
	}

	return nil
}
