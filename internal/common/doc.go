// Package common holds small generic helpers shared by the exporter packages.
package common
