package checksvc

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jhump/protoreflect/desc/protoparse"
)

// Describe parses protoPath (checksvc.proto, or a caller-supplied
// path to the same file) at runtime and renders the service's
// method/message shapes — mirrors the teacher's own use of
// protoreflect for introspecting a loaded .proto descriptor
// dynamically (internal/evaluator/builtins_grpc.go's protoRegistry),
// applied here to the checker's own service instead of a script's.
// This is `lumenc describe`'s implementation; it needs no generated
// .pb.go stubs to do it.
func Describe(protoPath string) (string, error) {
	dir, file := filepath.Split(protoPath)
	parser := protoparse.Parser{
		ImportPaths:           []string{dir},
		IncludeSourceCodeInfo: false,
	}
	fds, err := parser.ParseFiles(file)
	if err != nil {
		return "", fmt.Errorf("checksvc: parsing %s: %w", protoPath, err)
	}
	if len(fds) == 0 {
		return "", fmt.Errorf("checksvc: %s declared no file descriptor", protoPath)
	}
	fd := fds[0]

	var sb strings.Builder
	fmt.Fprintf(&sb, "package %s\n", fd.GetPackage())
	for _, svc := range fd.GetServices() {
		fmt.Fprintf(&sb, "service %s {\n", svc.GetName())
		for _, m := range svc.GetMethods() {
			fmt.Fprintf(&sb, "  rpc %s(%s) returns (%s)\n", m.GetName(), m.GetInputType().GetName(), m.GetOutputType().GetName())
		}
		sb.WriteString("}\n")
	}
	for _, msg := range fd.GetMessageTypes() {
		fmt.Fprintf(&sb, "message %s {\n", msg.GetName())
		for _, f := range msg.GetFields() {
			fmt.Fprintf(&sb, "  %s %s = %d\n", f.GetType(), f.GetName(), f.GetNumber())
		}
		sb.WriteString("}\n")
	}
	return sb.String(), nil
}
