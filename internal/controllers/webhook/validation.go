package webhook

import (
	"crypto/subtle"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
)

// validateVerification checks the subscription handshake parameters.
// An unconfigured verify token rejects every handshake.
func validateVerification(mode, token, expectedToken string) error {
	if mode != ModeSubscribe || expectedToken == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
		return richerrors.Error{
			ExternalMsg: "Forbidden",
			Code:        fiber.StatusForbidden,
		}
	}
	return nil
}

// validateObject rejects deliveries for anything other than page subscriptions.
func validateObject(object string) error {
	if object != ObjectPage {
		return richerrors.Error{
			ExternalMsg: "Not Found",
			Code:        fiber.StatusNotFound,
		}
	}
	return nil
}
