package bundletool

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrJavaNotFound is returned when no Java runtime can be located.
var ErrJavaNotFound = errors.New("java not found: install Java or set JAVA_HOME")

// FindJava returns an executable capable of running a JAR. It tries
// `java` on the PATH first, then $JAVA_HOME/bin/java.
func FindJava(ctx context.Context) (string, error) {
	if err := exec.CommandContext(ctx, "java", "-version").Run(); err == nil {
		return "java", nil
	}

	if home := os.Getenv("JAVA_HOME"); home != "" {
		java := filepath.Join(home, "bin", "java")
		if _, err := os.Stat(java); err == nil {
			return java, nil
		}
	}

	return "", ErrJavaNotFound
}
