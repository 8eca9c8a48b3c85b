// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command token signs an access token for the newsdesk API.
//
// Operators use it to hand out editor and admin credentials:
//
//	token -user 42 -name alice -role editor -locales en,de -ttl 12h
//
// Key paths default to JWT_PRIVATE_KEY_PATH and JWT_PUBLIC_KEY_PATH.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/taibuivan/newsdesk/internal/platform/constants"
	"github.com/taibuivan/newsdesk/internal/platform/locale"
	"github.com/taibuivan/newsdesk/internal/platform/sec"
	"github.com/taibuivan/newsdesk/pkg/query"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	privateKey := flag.String("private", os.Getenv("JWT_PRIVATE_KEY_PATH"), "path to the RSA private key (PEM)")
	publicKey := flag.String("public", os.Getenv("JWT_PUBLIC_KEY_PATH"), "path to the RSA public key (PEM)")
	userID := flag.String("user", "", "user id stamped on audited records")
	username := flag.String("name", "", "display name")
	role := flag.String("role", string(sec.RoleEditor), "admin, editor, author or member")
	locales := flag.String("locales", "", "comma separated locales the user may edit; empty means all")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if err := run(*privateKey, *publicKey, *userID, *username, *role, *locales, *ttl); err != nil {
		log.Error("token_generation_failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(privateKey, publicKey, userID, username, role, rawLocales string, ttl time.Duration) error {
	if privateKey == "" || publicKey == "" {
		return errors.New("both -private and -public key paths are required")
	}
	if userID == "" {
		return errors.New("-user is required")
	}

	userRole := sec.UserRole(role)
	if !userRole.IsValid() {
		return fmt.Errorf("unknown role %q", role)
	}

	var codes []string
	for _, raw := range query.StringSlice(rawLocales) {
		code, err := locale.Normalize(raw)
		if err != nil {
			return fmt.Errorf("locale %q: %w", raw, err)
		}
		codes = append(codes, code)
	}

	tokens, err := sec.NewTokenService(privateKey, publicKey, constants.AuthIssuer)
	if err != nil {
		return err
	}

	token, err := tokens.GenerateAccessToken(userID, username, userRole, codes, ttl)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
