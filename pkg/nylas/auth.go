package nylas

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// oauthConfig builds the oauth2 config for Nylas hosted authentication.
// The API key doubles as the client secret on the token endpoint.
func (c *Client) oauthConfig(clientID, redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: c.apiKey,
		RedirectURL:  redirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.apiURI + "/v3/connect/auth",
			TokenURL:  c.apiURI + "/v3/connect/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// AuthURL returns the hosted authentication URL the browser is redirected to
// when no grant is known yet.
func (c *Client) AuthURL(clientID, redirectURI string) string {
	return c.oauthConfig(clientID, redirectURI).AuthCodeURL("")
}

// ExchangeCode trades an authorization code for a grant id.
func (c *Client) ExchangeCode(ctx context.Context, clientID, redirectURI, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.oauthConfig(clientID, redirectURI).Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("nylas code exchange failed: %w", err)
	}

	grantID, _ := token.Extra("grant_id").(string)
	if grantID == "" {
		return "", fmt.Errorf("nylas token response is missing grant_id")
	}
	return grantID, nil
}
