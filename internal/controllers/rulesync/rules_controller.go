package rulesync

import (
	"github.com/DIMO-Network/messenger-autoresponder/internal/metrics"
	"github.com/DIMO-Network/messenger-autoresponder/internal/rules"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RuleStore persists a rule set and makes it active.
type RuleStore interface {
	Save(newRules rules.RuleSet) error
}

// RulesController lets the dashboard replace the rule set.
type RulesController struct {
	store        RuleStore
	syncPassword string
}

// NewRulesController creates a new RulesController.
func NewRulesController(store RuleStore, syncPassword string) *RulesController {
	return &RulesController{
		store:        store,
		syncPassword: syncPassword,
	}
}

// UpdateRules godoc
// @Summary      Replace the rule set
// @Description  Replaces all auto-reply rules with the supplied list and persists it. Rules are matched in list order.
// @Tags         Rules
// @Accept       json
// @Produce      json
// @Param        request  body      UpdateRulesRequest  true  "Sync password and the new rules"
// @Success      200      {object}  GenericResponse     "Rules updated successfully"
// @Failure      400      "Invalid rules format"
// @Failure      403      "Invalid sync password"
// @Failure      500      "Failed to save rules on server"
// @Router       /update-rules [post]
func (r *RulesController) UpdateRules(c *fiber.Ctx) error {
	var payload UpdateRulesRequest
	if err := c.BodyParser(&payload); err != nil {
		metrics.RuleUpdates.WithLabelValues(metrics.StatusInvalid).Inc()
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	if err := validatePassword(payload.Password, r.syncPassword); err != nil {
		metrics.RuleUpdates.WithLabelValues(metrics.StatusUnauthorized).Inc()
		zerolog.Ctx(c.UserContext()).Warn().Msg("Rule update rejected: invalid sync password")
		return err
	}

	newRules, err := parseRules(payload.Rules)
	if err != nil {
		metrics.RuleUpdates.WithLabelValues(metrics.StatusInvalid).Inc()
		return err
	}

	if err := r.store.Save(newRules); err != nil {
		metrics.RuleUpdates.WithLabelValues(metrics.StatusFailed).Inc()
		return richerrors.Error{
			ExternalMsg: "Failed to save rules on server",
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}

	metrics.RuleUpdates.WithLabelValues(metrics.StatusSuccess).Inc()
	metrics.ActiveRules.Set(float64(len(newRules)))
	zerolog.Ctx(c.UserContext()).Info().Int("rule_count", len(newRules)).Msg("Rules updated successfully")

	return c.Status(fiber.StatusOK).JSON(GenericResponse{Message: "Rules updated successfully"})
}
