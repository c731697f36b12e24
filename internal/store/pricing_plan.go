package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const sqlListPricingPlansForTool = `
SELECT id, tool_id, name, price, currency, billing_period, features, limits, is_popular, order_index, created_at
FROM pricing_plans
WHERE tool_id = $1
ORDER BY order_index, created_at
`

// ListPricingPlansForTool returns a tool's plans in display order
func (s *Store) ListPricingPlansForTool(ctx context.Context, toolID uuid.UUID) ([]PricingPlan, error) {
	plans := []PricingPlan{}
	if err := s.db.SelectContext(ctx, &plans, sqlListPricingPlansForTool, toolID); err != nil {
		return nil, fmt.Errorf("failed to list pricing plans: %w", err)
	}
	return plans, nil
}
