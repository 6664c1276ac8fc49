// Package schemas classifies raw source documents into one of the
// recognised structural variants and dispatches extraction to the
// handler for that variant.
//
// Source organizations deliver the same kind of content in at least
// three incompatible shapes: directive-rooted (directive -> section ->
// clause), section-rooted (document -> section -> clause), and
// free-form objects. Classification is purely by presence of expected
// top-level fields and never fails: the generic handler is the
// universal fallback, so an unrecognised shape degrades to zero or
// few records instead of an error.
package schemas
