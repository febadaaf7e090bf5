package invoice

import "mercato/models"

// authorize permits access iff the requester owns the order or holds an
// elevated role. Every delivery operation calls this independently; none of
// the three entry points trusts another's check.
func authorize(requesterID string, role models.Role, order *models.Order) error {
	if requesterID != "" && requesterID == order.UserID {
		return nil
	}
	if role.Elevated() {
		return nil
	}
	return ForbiddenError{OrderID: order.ID}
}
