package api

import (
	"context"  // Store wrapper signatures
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"book_market/internal/middleware" // Session extraction
	"book_market/internal/onboarding" // Onboarding state machine

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// sessionStore presents the authenticated request's session as the store's
// session entry, so the onboarding controller mounts against the identity the
// token proves rather than whatever a shared key holds. All other keys
// delegate to the backing store.
type sessionStore struct {
	onboarding.Store                    // Backing store for seller profiles
	session          onboarding.Session // Session from the verified token
}

// Get serves the session entry from the token, delegating everything else
func (s sessionStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	if key == onboarding.SessionKey {
		if p, ok := dest.(*onboarding.Session); ok {
			*p = s.session
			return true, nil
		}
	}
	return s.Store.Get(ctx, key, dest)
}

// mountController builds and mounts an onboarding controller for the request
func mountController(c *gin.Context, kv onboarding.Store) (*onboarding.Controller, bool) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		// If no session, return unauthorized
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	ctrl := onboarding.NewController(sessionStore{Store: kv, session: session})
	if _, err := ctrl.Mount(c.Request.Context()); err != nil {
		logrus.WithFields(logrus.Fields{
			"email": session.Email, // Account email
			"error": err.Error(),   // Error message
		}).Error("Onboarding state lookup failed") // Log lookup failure
		c.JSON(http.StatusBadGateway, gin.H{"error": "Seller state unavailable"})
		return nil, false
	}
	return ctrl, true
}

// SellerStateHandler returns the onboarding state for the authenticated user.
// Viewing never writes anything.
func SellerStateHandler(kv onboarding.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl, ok := mountController(c, kv)
		if !ok {
			return // Response already written
		}
		// Return the resolved state; the presentation layer picks form or dashboard
		c.JSON(http.StatusOK, gin.H{"state": ctrl.State().String()})
	}
}

// SellerRegisterHandler persists the seller profile for the authenticated
// user and reports the resulting state
func SellerRegisterHandler(kv onboarding.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profile map[string]any // Seller metadata is opaque to the core
		if err := c.ShouldBindJSON(&profile); err != nil || len(profile) == 0 {
			// If binding fails or the payload is empty, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid seller profile"})
			return
		}
		ctrl, ok := mountController(c, kv)
		if !ok {
			return // Response already written
		}
		// Submit only moves the machine from AwaitingRegistration
		if err := ctrl.Submit(c.Request.Context(), profile); err != nil {
			// Already registered means there is nothing to submit
			if errors.Is(err, onboarding.ErrInvalidState) {
				c.JSON(http.StatusConflict, gin.H{"error": "Seller already registered", "state": ctrl.State().String()})
				return
			}
			session, _ := middleware.SessionFromContext(c)
			logrus.WithFields(logrus.Fields{
				"email": session.Email, // Account email
				"error": err.Error(),   // Error message
			}).Error("Seller registration failed") // Log persistence failure
			// A failed write leaves the machine awaiting registration
			c.JSON(http.StatusBadGateway, gin.H{"error": "Seller registration failed", "state": ctrl.State().String()})
			return
		}
		// Return the new state
		c.JSON(http.StatusCreated, gin.H{"message": "Seller registered successfully", "state": ctrl.State().String()})
	}
}
