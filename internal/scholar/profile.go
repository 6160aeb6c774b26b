// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar pages through a profile's publication list, parses each
// result row into a Publication, and filters and sorts the result by year.
package scholar

import (
	"errors"
	"net/url"
	"strconv"
)

// ErrMissingIdentifier is returned when the profile URL carries no user
// parameter. No request is made.
var ErrMissingIdentifier = errors.New("could not extract user ID from profile URL")

const (
	userParam     = "user"
	citationsPath = "/citations"
)

// UserID returns the first non-empty value of the profile URL's user query
// parameter.
func UserID(profileURL string) (string, error) {
	u, err := url.Parse(profileURL)
	if err != nil {
		return "", ErrMissingIdentifier
	}
	for _, v := range u.Query()[userParam] {
		if v != "" {
			return v, nil
		}
	}
	return "", ErrMissingIdentifier
}

// PageURL builds the request for one page of a user's publication list,
// starting at row cursor.
func PageURL(baseURL, userID, locale string, cursor, pageSize int) string {
	params := url.Values{
		userParam:  {userID},
		"hl":       {locale},
		"cstart":   {strconv.Itoa(cursor)},
		"pagesize": {strconv.Itoa(pageSize)},
	}
	return baseURL + citationsPath + "?" + params.Encode()
}
