// Package repository maps domain entities onto keys in the device store.
// Collections are replaced wholesale on every write: read the full value,
// mutate in memory, write it back.
package repository

const (
	keyUsers         = "users"
	keyCurrentUser   = "currentUser"
	keyUserLoggedIn  = "userLoggedIn"
	keyNotifications = "notifications"
	keyBMI           = "bmi"
	keySteps         = "steps"
	keySleep         = "sleep"
	keyPushToken     = "expoPushToken"
)

func appointmentKey(username string) string { return "appointment_" + username }

func tasksKey(username string) string { return "tasks_" + username }
