package utils

// CanCreateProfile decides whether a user may add another profile under the
// plan's account limit. Creation is allowed strictly while the current count
// is below the limit; a limit of 0 rejects even the first profile.
func CanCreateProfile(currentProfileCount, planAccountLimit int) bool {
	return currentProfileCount < planAccountLimit
}
