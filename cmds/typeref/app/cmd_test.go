package app_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/ygrebnov/typeref/cmds/typeref/app"
	typerefErrors "github.com/ygrebnov/typeref/errors"
)

var _ = Describe("typeref command", func() {
	var cmd *cobra.Command
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = bytes.NewBuffer(nil)
		cmd = app.New()
		cmd.SetOut(buf)
		cmd.SetErr(buf)
	})

	Context("demo", func() {
		It("prints the inherited raw type", func() {
			cmd.SetArgs([]string{"demo"})
			Expect(cmd.Execute()).To(Succeed())
			Expect(buf.String()).To(Equal("int\n"))
		})

		It("rejects arguments", func() {
			cmd.SetArgs([]string{"demo", "x"})
			Expect(cmd.Execute()).NotTo(Succeed())
		})
	})

	Context("resolve", func() {
		DescribeTable("catalogue types",
			func(name, expected string) {
				cmd.SetArgs([]string{"resolve", name})
				Expect(cmd.Execute()).To(Succeed())
				Expect(buf.String()).To(Equal(expected + "\n"))
			},
			Entry("extending handler", "my-type-reference", "int"),
			Entry("builtin handler", "string-handler", "string"),
			Entry("generic argument", "pair", "app.pair"),
			Entry("deferred binding", "deferred", "int64"),
		)

		It("fails for a type without binding", func() {
			cmd.SetArgs([]string{"resolve", "misconfigured"})
			err := cmd.Execute()
			Expect(errors.Is(err, typerefErrors.ErrMissingTypeParameter)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("app.misconfigured"))
		})

		It("fails for an unknown name", func() {
			cmd.SetArgs([]string{"resolve", "nope"})
			Expect(cmd.Execute()).To(MatchError(ContainSubstring(`unknown type "nope"`)))
		})

		It("requires a name", func() {
			cmd.SetArgs([]string{"resolve"})
			Expect(cmd.Execute()).To(MatchError("exactly one type name expected"))
		})
	})

	Context("handlers", func() {
		It("table", func() {
			cmd.SetArgs([]string{"handlers"})
			Expect(cmd.Execute()).To(Succeed())
			Expect("\n" + buf.String()).To(Equal(`
TYPE      KIND    HANDLER
[]uint8   slice   typehandler.BytesHandler
bool      bool    typehandler.BoolHandler
float64   float64 typehandler.Float64Handler
int       int     typehandler.IntHandler
int64     int64   typehandler.Int64Handler
string    string  typehandler.StringHandler
time.Time struct  typehandler.TimeHandler
`))
		})

		It("yaml", func() {
			cmd.SetArgs([]string{"handlers", "-o", "yaml"})
			Expect(cmd.Execute()).To(Succeed())
			Expect(buf.String()).To(MatchYAML(`
items:
- {type: "[]uint8", kind: slice, handler: typehandler.BytesHandler}
- {type: bool, kind: bool, handler: typehandler.BoolHandler}
- {type: float64, kind: float64, handler: typehandler.Float64Handler}
- {type: int, kind: int, handler: typehandler.IntHandler}
- {type: int64, kind: int64, handler: typehandler.Int64Handler}
- {type: string, kind: string, handler: typehandler.StringHandler}
- {type: time.Time, kind: struct, handler: typehandler.TimeHandler}
`))
		})

		It("json", func() {
			cmd.SetArgs([]string{"handlers", "-o", "json"})
			Expect(cmd.Execute()).To(Succeed())
			Expect(buf.String()).To(ContainSubstring(`"handler": "typehandler.IntHandler"`))
			Expect(buf.String()).To(ContainSubstring(`"type": "time.Time"`))
		})

		It("rejects unknown formats", func() {
			cmd.SetArgs([]string{"handlers", "-o", "xml"})
			Expect(cmd.Execute()).To(MatchError(`invalid output format "xml"`))
		})
	})

	Context("logging", func() {
		It("accepts a log level", func() {
			cmd.SetArgs([]string{"-L", "debug", "demo"})
			Expect(cmd.Execute()).To(Succeed())
			Expect(buf.String()).To(HaveSuffix("int\n"))
		})

		It("rejects an invalid log level", func() {
			cmd.SetArgs([]string{"--log-level", "loud", "demo"})
			Expect(cmd.Execute()).To(MatchError(`invalid log level "loud"`))
		})
	})
})
