package transform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/hclmap/cst"
)

// TestDocument runs a tree shaped like a small real configuration
// through the whole pipeline:
//
//	service "web" "frontend" {
//	  replicas = 3
//	  image    = "nginx:1.25"
//	  command  = ["serve", "--port", 8080]
//	  env = {
//	    DEBUG  = true
//	    region = var.region
//	  }
//	}
//
//	service "db" {
//	  replicas = 1
//	}
//
//	locals {
//	  motd = <<-EOT
//	    hello
//	    world
//	    EOT
//	  port = max(8080, local.base + 1)
//	}
func TestDocument(t *testing.T) {
	t.Parallel()

	env := node(cst.Object,
		objectElem(ident("DEBUG"), term(tok("true"))),
		objectElem(ident("region"), node(cst.GetAttrExprTerm,
			term(ident("var")),
			getAttrNode("region"),
		)),
	)

	web := blockNode("service", tok(`"web"`), tok(`"frontend"`), bodyNode(
		attrNode("replicas", term(intLit("3"))),
		newline(),
		attrNode("image", term(tok(`"nginx:1.25"`))),
		newline(),
		attrNode("command", term(node(cst.Tuple,
			term(tok(`"serve"`)),
			term(tok(`"--port"`)),
			term(intLit("8080")),
		))),
		newline(),
		attrNode("env", term(env)),
	))

	db := blockNode("service", tok(`"db"`), bodyNode(
		attrNode("replicas", term(intLit("1"))),
	))

	portExpr := node(cst.FunctionCall,
		ident("max"),
		node(cst.Arguments,
			term(intLit("8080")),
			node(cst.NewLineAndOrComma, tok(",")),
			node(cst.BinaryOp,
				node(cst.GetAttrExprTerm, term(ident("local")), getAttrNode("base")),
				node(cst.BinaryTerm, opNode("+"), term(intLit("1"))),
			),
		),
	)

	locals := blockNode("locals", bodyNode(
		attrNode("motd", heredocTrim("<<-EOT\n    hello\n    world\n    EOT")),
		newline(),
		attrNode("port", portExpr),
	))

	doc, diags := New().Transform(startNode(bodyNode(
		web, newline(), db, newline(), locals,
	)))
	require.Empty(t, diags)

	want := map[string]any{
		"service": []any{
			map[string]any{
				"web": map[string]any{
					"frontend": map[string]any{
						"replicas": int64(3),
						"image":    "nginx:1.25",
						"command":  []any{"serve", "--port", int64(8080)},
						"env": map[string]any{
							"DEBUG":  true,
							"region": "${var.region}",
						},
					},
				},
			},
			map[string]any{
				"db": map[string]any{"replicas": int64(1)},
			},
		},
		"locals": []any{
			map[string]any{
				"motd": "hello\nworld",
				"port": "${max(8080, local.base + 1)}",
			},
		},
	}

	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}
