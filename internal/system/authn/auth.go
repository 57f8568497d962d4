/*
 * Copyright (c) 2025, HireWise, Inc. (https://hirewise.io).
 *
 * HireWise, Inc. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package authn

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hirewise/recruiting-data-service/internal/system/config"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
	"github.com/hirewise/recruiting-data-service/internal/system/log"
)

// ValidateTokenAndReturnClaims verifies the HMAC signature, expiry and
// audience of a bearer token and returns its claims.
func ValidateTokenAndReturnClaims(tokenString string) (map[string]interface{}, error) {

	logger := log.GetLogger()
	authConfig := config.GetRDSRuntime().Config.AuthServer

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(authConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		logger.Debug("Bearer token failed signature validation.", log.Error(err))
		return nil, unauthorizedError()
	}

	if !validateClaims(claims, authConfig.Audience) {
		return nil, unauthorizedError()
	}

	return claims, nil
}

// validateClaims ensures the token has a future expiry and the expected audience.
func validateClaims(claims jwt.MapClaims, expectedAudience string) bool {

	logger := log.GetLogger()

	expRaw, ok := claims["exp"]
	if !ok {
		logger.Debug("Token does not have an expiration time.")
		return false
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		logger.Debug("Token does not have a valid expiration time.", log.Any("exp", expRaw))
		return false
	}
	if int64(expFloat) < time.Now().Unix() {
		logger.Debug("Token has expired.", log.String("exp", time.Unix(int64(expFloat), 0).String()))
		return false
	}

	audRaw, ok := claims["aud"]
	if !ok {
		logger.Debug("Token does not have an audience claim.")
		return false
	}

	var audList []string
	switch aud := audRaw.(type) {
	case []interface{}:
		for _, a := range aud {
			if s, ok := a.(string); ok {
				audList = append(audList, s)
			}
		}
	case string:
		audList = append(audList, aud)
	}

	for _, aud := range audList {
		if aud == expectedAudience {
			return true
		}
	}
	logger.Debug("Token audience does not match expected audience.")
	return false
}

func unauthorizedError() error {
	return apierrors.NewClientError(apierrors.ErrorMessage{
		Code:        apierrors.UN_AUTHORIZED.Code,
		Message:     apierrors.UN_AUTHORIZED.Message,
		Description: apierrors.UN_AUTHORIZED.Description,
	}, http.StatusUnauthorized)
}
