package handlers

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Schedule  *ScheduleHandler
	Booking   *BookingHandler
	Auth      *AuthHandler
	Admin     *AdminHandler
	Audit     *AuditHandler
	Catalogue *CatalogueHandler
}
