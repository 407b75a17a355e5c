package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vetify/booking-api/internal/model"
	apperrors "github.com/vetify/booking-api/pkg/errors"
)

func (r *petRepository) Create(ctx context.Context, pet *model.Pet) error {
	query := `
		INSERT INTO pets (
			id, owner_id, name, pet_type, other_type, breed, color, age, weight,
			vaccination_status, allergies, friendly_with_people, friendly_with_animals,
			nervous_at_vet, special_care, emergency_contact_name, emergency_contact_phone,
			photo_key, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`
	pet.ID = uuid.New()
	pet.CreatedAt = time.Now()
	pet.UpdatedAt = pet.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		pet.ID,
		pet.OwnerID,
		pet.Name,
		pet.PetType,
		pet.OtherType,
		pet.Breed,
		pet.Color,
		pet.Age,
		pet.Weight,
		pet.VaccinationStatus,
		pet.Allergies,
		pet.FriendlyWithPeople,
		pet.FriendlyWithAnimals,
		pet.NervousAtVet,
		pet.SpecialCare,
		pet.EmergencyName,
		pet.EmergencyPhone,
		pet.PhotoKey,
		pet.CreatedAt,
		pet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

func (r *petRepository) Get(ctx context.Context, id uuid.UUID) (*model.Pet, error) {
	query := `SELECT * FROM pets WHERE id = $1`

	var pet model.Pet
	if err := r.db.GetContext(ctx, &pet, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("pet", err)
		}
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}
	return &pet, nil
}

func (r *petRepository) Update(ctx context.Context, pet *model.Pet) error {
	query := `
		UPDATE pets SET
			name = $1, pet_type = $2, other_type = $3, breed = $4, color = $5,
			age = $6, weight = $7, vaccination_status = $8, allergies = $9,
			friendly_with_people = $10, friendly_with_animals = $11,
			nervous_at_vet = $12, special_care = $13,
			emergency_contact_name = $14, emergency_contact_phone = $15,
			photo_key = $16, updated_at = $17
		WHERE id = $18
	`
	pet.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		pet.Name,
		pet.PetType,
		pet.OtherType,
		pet.Breed,
		pet.Color,
		pet.Age,
		pet.Weight,
		pet.VaccinationStatus,
		pet.Allergies,
		pet.FriendlyWithPeople,
		pet.FriendlyWithAnimals,
		pet.NervousAtVet,
		pet.SpecialCare,
		pet.EmergencyName,
		pet.EmergencyPhone,
		pet.PhotoKey,
		pet.UpdatedAt,
		pet.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update pet: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("pet", nil)
	}
	return nil
}

// Delete relies on the ON DELETE CASCADE constraint to drop the pet's
// appointments together with the row.
func (r *petRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pet: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("pet", nil)
	}
	return nil
}

func (r *petRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Pet, error) {
	query := `SELECT * FROM pets WHERE owner_id = $1 ORDER BY created_at DESC`

	var pets []*model.Pet
	if err := r.db.SelectContext(ctx, &pets, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	return pets, nil
}

func (r *petRepository) List(ctx context.Context, filter model.PetFilter) ([]*model.PetWithOwner, error) {
	query := `
		SELECT p.*, u.username AS owner_username
		FROM pets p
		JOIN users u ON u.id = p.owner_id
		WHERE 1 = 1
	`
	args := []interface{}{}
	argCount := 1

	if filter.PetType != "" {
		query += fmt.Sprintf(" AND p.pet_type = $%d", argCount)
		args = append(args, filter.PetType)
		argCount++
	}

	if filter.Search != "" {
		query += fmt.Sprintf(
			" AND (p.name ILIKE $%d OR u.username ILIKE $%d OR p.breed ILIKE $%d)",
			argCount, argCount, argCount,
		)
		args = append(args, "%"+filter.Search+"%")
		argCount++
	}

	query += " ORDER BY p.created_at DESC"

	var pets []*model.PetWithOwner
	if err := r.db.SelectContext(ctx, &pets, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	return pets, nil
}

func (r *petRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM pets`); err != nil {
		return 0, fmt.Errorf("failed to count pets: %w", err)
	}
	return count, nil
}

func (r *petRepository) CountOfType(ctx context.Context, petType model.PetType) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM pets WHERE pet_type = $1`, petType)
	if err != nil {
		return 0, fmt.Errorf("failed to count pets by type: %w", err)
	}
	return count, nil
}

func (r *petRepository) CountByType(ctx context.Context) ([]model.PetTypeCount, error) {
	query := `SELECT pet_type, COUNT(*) AS count FROM pets GROUP BY pet_type ORDER BY pet_type`

	var counts []model.PetTypeCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("failed to group pets by type: %w", err)
	}
	return counts, nil
}

func (r *petRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM pets WHERE created_at >= $1`, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count new pets: %w", err)
	}
	return count, nil
}
