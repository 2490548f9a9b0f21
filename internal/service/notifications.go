package service

import (
	"fmt"

	"github.com/lshigami/eduportal/internal/dto"
)

const (
	variantDefault     = "default"
	variantDestructive = "destructive"
)

func loginSucceeded(name string) *dto.Notification {
	return &dto.Notification{Title: "Login successful", Description: fmt.Sprintf("Welcome back, %s!", name), Variant: variantDefault}
}

func signupSucceeded(name string) *dto.Notification {
	return &dto.Notification{Title: "Signup successful", Description: fmt.Sprintf("Welcome, %s!", name), Variant: variantDefault}
}

func loggedOut() *dto.Notification {
	return &dto.Notification{Title: "Logged out", Description: "You have been successfully logged out.", Variant: variantDefault}
}

func verificationSucceeded() *dto.Notification {
	return &dto.Notification{Title: "Verification successful", Description: "Your school account is now verified.", Variant: variantDefault}
}

func verificationRejected() *dto.Notification {
	return &dto.Notification{Title: "Verification failed", Description: "Invalid token. Please try again.", Variant: variantDestructive}
}

// FailureNotification builds the destructive toast for a failed auth action, e.g. "Login failed".
func FailureNotification(action string, err error) *dto.Notification {
	desc := "An error occurred"
	if err != nil {
		desc = err.Error()
	}
	return &dto.Notification{Title: action + " failed", Description: desc, Variant: variantDestructive}
}
