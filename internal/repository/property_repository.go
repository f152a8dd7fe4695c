package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/nomadlab/seoulbang-backend-go/internal/models"
)

// PropertyRepository reads the listings store.
type PropertyRepository struct {
	db *sql.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// FindCandidates returns (id, dong code) pairs for listings matching the
// budget filter. Range entries with two elements bound both sides; a single
// element is a lower bound, except maintenance cost where it is an upper
// bound. Empty entries impose no filter.
func (r *PropertyRepository) FindCandidates(ctx context.Context, budget models.Budget) ([]models.PropertyRef, error) {
	query := "SELECT id, administrative_code FROM properties"

	var conditions []string
	var args []interface{}

	addSet := func(column string, values []string) {
		if len(values) == 0 {
			return
		}
		conditions = append(conditions, fmt.Sprintf("%s IN (%s)", column, placeholders(len(values))))
		for _, v := range values {
			args = append(args, v)
		}
	}
	addRange := func(column string, bounds []float64, singleIsUpper bool) {
		switch len(bounds) {
		case 2:
			conditions = append(conditions, column+" BETWEEN ? AND ?")
			args = append(args, bounds[0], bounds[1])
		case 1:
			op := ">="
			if singleIsUpper {
				op = "<="
			}
			conditions = append(conditions, column+" "+op+" ?")
			args = append(args, bounds[0])
		}
	}

	addSet("transaction_type", budget.TransactionType)
	addSet("property_type", budget.PropertyType)
	addRange("deposit", budget.Deposit, false)
	addRange("monthly_rent_cost", budget.MonthlyRent, false)
	addRange("maintenance_cost", budget.MaintenanceCost, true)
	addRange("area", budget.Area, false)

	if len(budget.Direction) > 0 {
		likes := make([]string, len(budget.Direction))
		for i, d := range budget.Direction {
			likes[i] = "direction LIKE ?"
			args = append(args, "%"+d+"%")
		}
		conditions = append(conditions, "("+strings.Join(likes, " OR ")+")")
	}

	// floor_type filters on the room type column (the crawler stores the
	// floor structure there)
	addSet("room_type", budget.FloorType)

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query property candidates: %w", err)
	}
	defer rows.Close()

	var refs []models.PropertyRef
	for rows.Next() {
		var ref models.PropertyRef
		if err := rows.Scan(&ref.ID, &ref.DongCode); err != nil {
			return nil, fmt.Errorf("failed to scan property ref: %w", err)
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

// GetByIDs retrieves full listing rows for an explicit id set.
func (r *PropertyRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.Property, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT id, administrative_code, location,
		main_image_url, address,
		deposit, monthly_rent_cost, maintenance_cost, area,
		floor, total_floor, property_type, transaction_type, room_type,
		features, direction, property_number, property_name,
		property_confirmation_date, rooms_bathrooms, duplex,
		parking_spaces, elevator_count, approval_date
		FROM properties WHERE id IN (%s)`, placeholders(len(ids)))

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		var p models.Property
		var location, image, address, floor, totalFloor sql.NullString
		var propType, txType, roomType, features, direction sql.NullString
		var number, name, confirmation, roomsBathrooms, approval sql.NullString
		var duplex sql.NullBool
		if err := rows.Scan(
			&p.ID, &p.AdministrativeCode, &location,
			&image, &address,
			&p.Deposit, &p.MonthlyRentCost, &p.MaintenanceCost, &p.Area,
			&floor, &totalFloor, &propType, &txType, &roomType,
			&features, &direction, &number, &name,
			&confirmation, &roomsBathrooms, &duplex,
			&p.ParkingSpaces, &p.ElevatorCount, &approval,
		); err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}

		p.LocationWKT = location.String
		p.MainImageURL = image.String
		p.Address = address.String
		p.Floor = floor.String
		p.TotalFloor = totalFloor.String
		p.PropertyType = propType.String
		p.TransactionType = txType.String
		p.RoomType = roomType.String
		p.Features = features.String
		p.Direction = direction.String
		p.PropertyNumber = number.String
		p.PropertyName = name.String
		p.PropertyConfirmationDate = confirmation.String
		p.RoomsBathrooms = roomsBathrooms.String
		p.Duplex = duplex.Bool
		p.ApprovalDate = approval.String

		properties = append(properties, p)
	}

	return properties, rows.Err()
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
