// Package models defines the core data structures for users, appointments,
// notifications, tasks, and the shared error taxonomy.
package models

import "errors"

// MaxUsers is the maximum number of accounts the device can hold.
const MaxUsers = 20

// AppointmentStatusUpcoming is the status every freshly booked appointment gets.
const AppointmentStatusUpcoming = "UPCOMING"

var (
	// ErrCapacityExceeded is returned when the user list is already full.
	ErrCapacityExceeded = errors.New("maximum number of users reached")
	// ErrDuplicateUsername is returned when the username is already registered.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrInvalidDateTime is returned when an appointment date or time does not
	// parse to a real instant.
	ErrInvalidDateTime = errors.New("invalid date or time")
	// ErrInvalidNotification is returned when a notification is missing its
	// id, title, or message.
	ErrInvalidNotification = errors.New("invalid notification structure")
	// ErrNoSession is returned when no user is logged in or the logged-in
	// username no longer resolves to a stored record.
	ErrNoSession = errors.New("no user is logged in")
	// ErrInvalidMetric is returned when a health metric is out of range.
	ErrInvalidMetric = errors.New("invalid metric value")
)

// User represents a registered account on the device.
// Credentials are stored and compared in plain text; hashing is an explicit
// non-goal of this design.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	PhotoURI string `json:"photoUri,omitempty"`
}

// ProfileUpdate carries a partial update for the logged-in user.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
	PhotoURI *string `json:"photoUri,omitempty"`
}

// Doctor describes one practitioner from the fixed booking catalog.
type Doctor struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Degree     string `json:"degree"`
	Speciality string `json:"speciality"`
	Photo      string `json:"photo"`
}

// Appointment is the single live booking for a user. Booking overwrites the
// previous record wholesale; there is no history and no cancellation.
type Appointment struct {
	ID               string `json:"id"`
	DoctorName       string `json:"doctorName"`
	DoctorDegree     string `json:"doctorDegree"`
	DoctorSpeciality string `json:"doctorSpeciality"`
	DoctorPhoto      string `json:"doctorPhoto,omitempty"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	MeetLink         string `json:"meetLink,omitempty"`
	Status           string `json:"status"`
}

// BookingRequest is the caller-provided part of a new appointment.
// Date and Time must be RFC 3339 instants.
type BookingRequest struct {
	DoctorName       string `json:"doctorName"`
	DoctorDegree     string `json:"doctorDegree"`
	DoctorSpeciality string `json:"doctorSpeciality"`
	DoctorPhoto      string `json:"doctorPhoto,omitempty"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	MeetLink         string `json:"meetLink,omitempty"`
}

// Notification is one entry in the device-wide ledger. The ledger is shared
// across all accounts on the device, not partitioned per user.
type Notification struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Message       string            `json:"message"`
	Date          string            `json:"date"`
	FormattedDate string            `json:"formattedDate,omitempty"`
	FormattedTime string            `json:"formattedTime,omitempty"`
	Seen          bool              `json:"seen"`
	Data          *NotificationData `json:"data,omitempty"`
}

// NotificationData is the opaque payload carried by a notification.
type NotificationData struct {
	Appointment *Appointment `json:"appointment,omitempty"`
}

// Task is one to-do item in a user's list.
type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}
