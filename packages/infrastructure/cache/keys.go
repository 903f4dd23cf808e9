package cache

import "strconv"

const (
	PostKeyPrefix         = "post:"
	LoginAttemptKeyPrefix = "login_attempts:"
	LoginLockKeyPrefix    = "login_lock:"
)

func PostKey(id int64) string {
	return PostKeyPrefix + strconv.FormatInt(id, 10)
}

func LoginAttemptKey(email string) string {
	return LoginAttemptKeyPrefix + email
}

func LoginLockKey(email string) string {
	return LoginLockKeyPrefix + email
}
