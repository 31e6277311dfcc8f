// Package paramtype maps source parameter types to ReqIF datatype definitions.
package paramtype
