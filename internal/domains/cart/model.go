package cart

import "time"

// Cart is the per-user shopping cart, created at registration time.
type Cart struct {
	ID        int64     `db:"pk_id" json:"id"`
	UserID    int64     `db:"fk_user_id" json:"userId"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
