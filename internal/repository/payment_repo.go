package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tillpoint/pospay/internal/domain"
)

// PaymentRepo stores and queries processed payments.
type PaymentRepo struct {
	db *sql.DB
}

func NewPaymentRepo(db *sql.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) Insert(p *domain.Payment) error {
	item, err := marshalItem(p.AdditionalItem)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(
		`INSERT INTO payments
		(id, customer_id, price, price_modifier, final_price, points,
		 payment_method, additional_item, datetime, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		p.ID, p.CustomerID, p.Price.String(), p.PriceModifier.String(),
		p.FinalPrice.String(), p.Points, string(p.Method), item,
		p.Datetime.UTC().Format(time.RFC3339), p.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// BulkInsert inserts many payments in one transaction. Used by the seeder.
func (r *PaymentRepo) BulkInsert(payments []domain.Payment) (int, error) {
	sqlTx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer sqlTx.Rollback()

	stmt, err := sqlTx.Prepare(
		`INSERT OR IGNORE INTO payments
		(id, customer_id, price, price_modifier, final_price, points,
		 payment_method, additional_item, datetime, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for i := range payments {
		p := &payments[i]
		item, err := marshalItem(p.AdditionalItem)
		if err != nil {
			return inserted, err
		}
		res, err := stmt.Exec(
			p.ID, p.CustomerID, p.Price.String(), p.PriceModifier.String(),
			p.FinalPrice.String(), p.Points, string(p.Method), item,
			p.Datetime.UTC().Format(time.RFC3339), p.CreatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return inserted, fmt.Errorf("insert payment %s: %w", p.ID, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	if err := sqlTx.Commit(); err != nil {
		return inserted, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}

// ListBetween returns payments with start <= datetime <= end, ordered by
// datetime ascending.
func (r *PaymentRepo) ListBetween(start, end time.Time) ([]domain.Payment, error) {
	rows, err := r.db.Query(
		`SELECT id, customer_id, price, price_modifier, final_price, points,
		        payment_method, additional_item, datetime, created_at
		 FROM payments
		 WHERE datetime >= ? AND datetime <= ?
		 ORDER BY datetime ASC`,
		start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

func (r *PaymentRepo) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM payments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count payments: %w", err)
	}
	return n, nil
}

func scanPayment(rows *sql.Rows) (*domain.Payment, error) {
	var (
		p                            domain.Payment
		price, modifier, final, item string
		dtStr, createdStr            string
		method                       string
	)
	if err := rows.Scan(&p.ID, &p.CustomerID, &price, &modifier, &final,
		&p.Points, &method, &item, &dtStr, &createdStr); err != nil {
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	var err error
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("parse price %q: %w", price, err)
	}
	if p.PriceModifier, err = decimal.NewFromString(modifier); err != nil {
		return nil, fmt.Errorf("parse price_modifier %q: %w", modifier, err)
	}
	if p.FinalPrice, err = decimal.NewFromString(final); err != nil {
		return nil, fmt.Errorf("parse final_price %q: %w", final, err)
	}
	if item != "" {
		if err := json.Unmarshal([]byte(item), &p.AdditionalItem); err != nil {
			return nil, fmt.Errorf("parse additional_item: %w", err)
		}
	}
	if p.Datetime, err = time.Parse(time.RFC3339, dtStr); err != nil {
		return nil, fmt.Errorf("parse datetime %q: %w", dtStr, err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdStr, err)
	}
	p.Method = domain.Method(method)
	return &p, nil
}

func marshalItem(item map[string]string) (string, error) {
	if len(item) == 0 {
		return "", nil
	}
	b, err := json.Marshal(item)
	if err != nil {
		return "", fmt.Errorf("marshal additional_item: %w", err)
	}
	return string(b), nil
}
