// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package serdser contains the common serialization and
// deserialization helpers which are shared among the resource
// packages, such as the binding error reporting and the translation
// of cerr errors to their HTTP status codes.
package serdser

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/momeni/rental-fleet/pkg/core/cerr"
)

// Bind deserializes the request body and query parameters into the
// req struct, reporting a false result after serializing a proper
// error response if the binding or its validation fails.
func Bind(c *gin.Context, req any) bool {
	return dser(c, c.ShouldBind(req))
}

// BindURI deserializes the request path parameters into the req
// struct, reporting a false result after serializing a proper error
// response if the binding or its validation fails.
func BindURI(c *gin.Context, req any) bool {
	return dser(c, c.ShouldBindUri(req))
}

func dser(c *gin.Context, err error) bool {
	switch err := err.(type) {
	case *validator.InvalidValidationError:
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
	case validator.ValidationErrors:
		var nameToErrs map[string][]string
		for _, ferr := range err {
			AddErr(&nameToErrs, ferr.Field(), ferr.Error())
		}
		c.JSON(http.StatusBadRequest, nameToErrs)
	default:
		if err == nil {
			return true
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	}
	return false
}

// AddErr appends the msgs error messages to the name key of the errs
// map, allocating the map itself if this is its first entry.
func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	if elist, ok := (*errs)[name]; !ok {
		(*errs)[name] = msgs
	} else {
		(*errs)[name] = append(elist, msgs...)
	}
}

// Assert reports the ok condition, recording the msgs error messages
// under the name key of the errs map when it does not hold.
func Assert(errs *map[string][]string, ok bool, name string, msgs ...string) bool {
	if ok {
		return true
	}
	AddErr(errs, name, msgs...)
	return false
}

// SerErr serializes an error response, using the HTTP status code of
// the err error if it is (or wraps) a cerr.Error and the internal
// server error status otherwise.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if errors.As(err, &ce) {
		c.JSON(ce.HTTPStatusCode, gin.H{
			"detail": ce.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"detail": err.Error(),
	})
}
