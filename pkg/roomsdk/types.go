package roomsdk

// SignupRequest starts a registration. ConfirmPassword must match Password.
type SignupRequest struct {
	Username        string `json:"username"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// SignupResponse carries the opaque token the caller needs to verify, and
// whether the code was actually emailed. DebugOTP is populated only in
// development deployments when delivery failed.
type SignupResponse struct {
	SignupToken  string `json:"signup_token"`
	OTPDelivered bool   `json:"otp_delivered"`
	DebugOTP     string `json:"debug_otp,omitempty"`
}

// VerifyRequest confirms the emailed code.
type VerifyRequest struct {
	SignupToken string `json:"signup_token"`
	Code        string `json:"code"`
}

// ResendRequest asks for a fresh code for a pending signup.
type ResendRequest struct {
	SignupToken string `json:"signup_token"`
}

// LoginRequest is the password login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by login and by a successful verification.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// BookingCell is one occupied slot in the grid listing.
type BookingCell struct {
	OwnerName string `json:"owner_name"`
}

// BookingsResponse maps flattened "{room}_{date}_{slot}" keys to their
// occupants. Free slots are simply absent.
type BookingsResponse struct {
	Bookings map[string]BookingCell `json:"bookings"`
}

// ReserveRequest books the slot named by CellID.
type ReserveRequest struct {
	CellID string `json:"cell_id"`
}

// ReserveResponse confirms a new booking.
type ReserveResponse struct {
	BookingID string `json:"booking_id"`
	CellID    string `json:"cell_id"`
}

// CancelRequest releases the slot named by CellID.
type CancelRequest struct {
	CellID string `json:"cell_id"`
}

// ScheduleResponse describes the bookable grid so clients can render it
// without hardcoding the shape.
type ScheduleResponse struct {
	Rooms      int      `json:"rooms"`
	SlotLabels []string `json:"slot_labels"`
}

// AdminUser is one row of the administrative user listing.
type AdminUser struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Role         string `json:"role"`
	Verified     bool   `json:"verified"`
	BookingCount int    `json:"booking_count"`
}

// AdminUsersResponse is the administrative user listing.
type AdminUsersResponse struct {
	Users []AdminUser `json:"users"`
}

// BootstrapRequest creates the first admin account.
type BootstrapRequest struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BootstrapResponse confirms bootstrap.
type BootstrapResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// HealthResponse is returned by the health probes.
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime,omitempty"`
}
