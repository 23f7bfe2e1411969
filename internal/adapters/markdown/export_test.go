// export_test.go exports private functions for white-box testing.
package markdown

var Dedent = dedent
