package legalapi

// Advocate is one entry of the public active-advocates listing.
type Advocate struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	IsActive bool   `json:"is_active"`
}

// Profile is the authenticated user's own record.
type Profile struct {
	ID            int    `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	Role          string `json:"role"`
	ContactNumber string `json:"contact_number"`
}

// Case is a legal matter as listed for either portal.
type Case struct {
	ID          int    `json:"id"`
	Title       string `json:"title,omitempty"`
	CaseTitle   string `json:"case_title,omitempty"`
	CaseNumber  string `json:"case_number,omitempty"`
	CaseType    string `json:"case_type,omitempty"`
	Status      string `json:"status"`
	LawyerName  string `json:"lawyer_name,omitempty"`
	NextHearing string `json:"next_hearing,omitempty"`
}

// Hearing is a scheduled court date.
type Hearing struct {
	ID          int    `json:"id"`
	CaseTitle   string `json:"case_title,omitempty"`
	CaseNumber  string `json:"case_number,omitempty"`
	CourtName   string `json:"court_name,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	NextHearing string `json:"next_hearing,omitempty"`
	Status      string `json:"status,omitempty"`
}

// Payment is one ledger entry of the client's payment history.
type Payment struct {
	ID          int    `json:"id"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// Appointment is a client/advocate meeting request.
type Appointment struct {
	ID              int    `json:"id"`
	ClientName      string `json:"client_name,omitempty"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Purpose         string `json:"purpose,omitempty"`
	Status          string `json:"status"`
}

// AppointmentRequest books a meeting with an advocate.
type AppointmentRequest struct {
	AdvocateID      int    `json:"advocate_id"`
	ClientName      string `json:"client_name,omitempty"`
	ClientEmail     string `json:"client_email,omitempty"`
	ClientContact   string `json:"client_contact,omitempty"`
	ClientAddress   string `json:"client_address,omitempty"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Purpose         string `json:"purpose"`
}
