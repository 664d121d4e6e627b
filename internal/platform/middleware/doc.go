// Package middleware holds the net/http middleware applied in front of every route.
package middleware
