// export_test.go exports private functions for white-box testing.
package envfile

var (
	Validate    = validate
	SplitLines  = splitLines
	ReplaceFile = replaceFile
	FileDigest  = fileDigest
)
