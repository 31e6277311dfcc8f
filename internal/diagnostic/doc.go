// Package diagnostic collects structured errors, warnings and notes produced while
// checking export settings against a ReqIF template.
package diagnostic
