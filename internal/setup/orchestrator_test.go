package setup

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivekraman/modsetup/internal/config"
	"github.com/vivekraman/modsetup/internal/edit"
	oerrors "github.com/vivekraman/modsetup/internal/errors"
	"github.com/vivekraman/modsetup/internal/naming"
	"github.com/vivekraman/modsetup/internal/output"
	"github.com/vivekraman/modsetup/internal/testutil"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	output.SetupLogging(output.LogConfig{Timestamps: output.BoolPtr(false)})
	output.SetLogOutput(&buf)
	t.Cleanup(func() { output.SetLogOutput(os.Stderr) })
	return &buf
}

func newOrchestrator(root, name string, mutate func(*Options)) *Orchestrator {
	opts := Options{
		Root:   root,
		Names:  naming.Derive(name),
		Config: config.DefaultConfig(),
	}
	if mutate != nil {
		mutate(&opts)
	}
	return New(opts)
}

func TestRun_PaymentsAPI(t *testing.T) {
	logs := captureLogs(t)
	root := testutil.TemplateProject(t)

	summary, err := newOrchestrator(root, "payments-api", nil).Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, summary.Failures())
	assert.Zero(t, summary.Counts.Skipped)
	assert.Zero(t, summary.Counts.Planned)
	assert.Positive(t, summary.Counts.Changed)
	assert.Empty(t, summary.Missing)

	files := testutil.Snapshot(t, root)
	assert.ElementsMatch(t, []string{
		"pom.xml",
		"payments-api/pom.xml",
		"payments-api/src/main/java/dev/vivekraman/payments/api/config/PaymentsApiConfig.java",
		"payments-api/src/main/java/dev/vivekraman/payments/api/config/Constants.java",
		"payments-api/src/main/java/dev/vivekraman/payments/api/controller/TestController.java",
		"payments-api-app/pom.xml",
		"payments-api-app/src/main/java/dev/vivekraman/payments/api/app/BackendModulePaymentsApiApplication.java",
		"payments-api-app/src/test/java/dev/vivekraman/payments/api/app/BackendModuleTemplateApplicationTests.java",
		"payments-api-app/src/main/resources/application.properties",
		"payments-api-app/src/main/resources/application-payments-api.properties",
	}, keys(files))

	rootPOM := files["pom.xml"]
	assert.Contains(t, rootPOM, "<artifactId>spring-boot-starter-parent</artifactId>\n\t\t<version>3.1.4</version>")
	assert.Contains(t, rootPOM, "<artifactId>backend-module-payments-api</artifactId>\n\t<version>1.0-rc1</version>")
	assert.Contains(t, rootPOM, "<name>backend-module-payments-api</name>")
	assert.Contains(t, rootPOM, "<module>payments-api</module>")
	assert.Contains(t, rootPOM, "<module>payments-api-app</module>")
	assert.Contains(t, rootPOM, "<artifactId>payments-api</artifactId>")
	assert.NotContains(t, rootPOM, "template")
	assert.NotContains(t, rootPOM, "0.9-rc3")

	for _, p := range []string{"payments-api/pom.xml", "payments-api-app/pom.xml"} {
		assert.Contains(t, files[p], "<artifactId>backend-module-payments-api</artifactId>", p)
		assert.Contains(t, files[p], "<version>1.0-rc1</version>", p)
		assert.NotContains(t, files[p], "template", p)
	}
	assert.Contains(t, files["payments-api-app/pom.xml"], "<artifactId>payments-api-app</artifactId>")

	app := files["payments-api-app/src/main/java/dev/vivekraman/payments/api/app/BackendModulePaymentsApiApplication.java"]
	assert.Contains(t, app, "package dev.vivekraman.payments.api.app;")
	assert.Contains(t, app, "public class BackendModulePaymentsApiApplication {")
	assert.Contains(t, app, "SpringApplication.run(BackendModulePaymentsApiApplication.class, args);\n")
	assert.NotContains(t, app, ";;")

	cfg := files["payments-api/src/main/java/dev/vivekraman/payments/api/config/PaymentsApiConfig.java"]
	assert.Contains(t, cfg, "public class PaymentsApiConfig {")
	assert.Contains(t, cfg, "public GroupedOpenApi paymentsApiApiGroup()")
	assert.Contains(t, cfg, `.packagesToScan("dev.vivekraman.payments.api.controller")`)

	assert.Contains(t, files["payments-api/src/main/java/dev/vivekraman/payments/api/config/Constants.java"],
		`String MODULE_NAME = "payments-api";`)

	controller := files["payments-api/src/main/java/dev/vivekraman/payments/api/controller/TestController.java"]
	assert.Contains(t, controller, "import dev.vivekraman.payments.api.config.Constants;")
	assert.Contains(t, controller, "import dev.vivekraman.monolith.model.Response;")

	assert.Contains(t, files["payments-api-app/src/main/resources/application.properties"],
		"spring.profiles.include=payments-api")

	assert.Contains(t, logs.String(), "Updating version numbers...")
	assert.Contains(t, logs.String(), "Renaming modules...")
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestRun_DryRunLeavesTreeUntouched(t *testing.T) {
	captureLogs(t)
	root := testutil.TemplateProject(t)
	before := testutil.Snapshot(t, root)

	summary, err := newOrchestrator(root, "payments-api", func(o *Options) {
		o.DryRun = true
		o.Verbose = true
	}).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, before, testutil.Snapshot(t, root))
	assert.True(t, summary.DryRun)
	assert.Zero(t, summary.Counts.Changed)
	assert.Zero(t, summary.Counts.Failed)
	assert.Positive(t, summary.Counts.Planned)

	var renamed bool
	for _, r := range summary.Results {
		if r.Op == edit.OpRename && r.Path == "template" {
			renamed = true
			assert.Equal(t, edit.StatusPlanned, r.Status)
			assert.Equal(t, "payments-api", r.Target)
		}
		if r.Op == edit.OpRewrite && r.Status == edit.StatusPlanned {
			assert.NotEmpty(t, r.Diff, "verbose dry run carries diffs for %s", r.Path)
		}
	}
	assert.True(t, renamed)
}

func TestRun_RerunRecordsFailures(t *testing.T) {
	captureLogs(t)
	root := testutil.TemplateProject(t)

	_, err := newOrchestrator(root, "orders", nil).Run(context.Background())
	require.NoError(t, err)
	after := testutil.Snapshot(t, root)

	summary, err := newOrchestrator(root, "orders", nil).Run(context.Background())

	require.NoError(t, err, "file-level failures are not fatal")
	assert.Positive(t, summary.Counts.Skipped)
	assert.Positive(t, summary.Counts.Failed)
	assert.Contains(t, summary.Missing, "template")
	assert.Equal(t, after, testutil.Snapshot(t, root))
}

func TestRun_ExistingDestination(t *testing.T) {
	t.Run("strict keeps the template module", func(t *testing.T) {
		captureLogs(t)
		root := testutil.TemplateProject(t)
		testutil.WriteFile(t, root, "orders/keep.txt", "keep")

		summary, err := newOrchestrator(root, "orders", nil).Run(context.Background())

		require.NoError(t, err)
		failures := summary.Failures()
		require.Len(t, failures, 1)
		assert.Equal(t, "template", failures[0].Path)
		assert.Contains(t, failures[0].Message, "already exists")
		assert.True(t, testutil.Exists(t, root, "template/pom.xml"))
		assert.True(t, testutil.Exists(t, root, "orders/keep.txt"))
		assert.True(t, testutil.Exists(t, root, "orders-app/pom.xml"))
	})

	t.Run("replace overwrites", func(t *testing.T) {
		captureLogs(t)
		root := testutil.TemplateProject(t)
		testutil.WriteFile(t, root, "orders/keep.txt", "keep")

		summary, err := newOrchestrator(root, "orders", func(o *Options) {
			o.Policy = edit.PolicyReplace
		}).Run(context.Background())

		require.NoError(t, err)
		assert.Empty(t, summary.Failures())
		assert.False(t, testutil.Exists(t, root, "orders/keep.txt"))
		assert.True(t, testutil.Exists(t, root, "orders/pom.xml"))
	})

	t.Run("replace in dry run only reports", func(t *testing.T) {
		captureLogs(t)
		root := testutil.TemplateProject(t)
		testutil.WriteFile(t, root, "orders/keep.txt", "keep")
		before := testutil.Snapshot(t, root)

		summary, err := newOrchestrator(root, "orders", func(o *Options) {
			o.Policy = edit.PolicyReplace
			o.DryRun = true
		}).Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, before, testutil.Snapshot(t, root))
		assert.Empty(t, summary.Failures())
	})
}

func TestRun_Cancelled(t *testing.T) {
	captureLogs(t)
	root := testutil.TemplateProject(t)
	before := testutil.Snapshot(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newOrchestrator(root, "orders", nil).Run(ctx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, before, testutil.Snapshot(t, root))
}

func TestRun_Build(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	withBuild := func(command string, dryRun bool) func(*Options) {
		return func(o *Options) {
			o.Build = true
			o.DryRun = dryRun
			o.Config.Build.Command = command
			o.BuildOut = &bytes.Buffer{}
		}
	}

	t.Run("runs in the project root after renames", func(t *testing.T) {
		captureLogs(t)
		root := testutil.TemplateProject(t)

		summary, err := newOrchestrator(root, "orders",
			withBuild(`sh -c "test -f orders-app/pom.xml"`, false)).Run(context.Background())

		require.NoError(t, err)
		assert.True(t, summary.Built)
	})

	t.Run("failure is fatal with the build exit code", func(t *testing.T) {
		captureLogs(t)
		root := testutil.TemplateProject(t)

		summary, err := newOrchestrator(root, "orders",
			withBuild(`sh -c "exit 1"`, false)).Run(context.Background())

		require.Error(t, err)
		var exitErr *oerrors.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, oerrors.ExitBuildError, exitErr.Code)
		require.NotNil(t, summary)
		assert.False(t, summary.Built)
		assert.True(t, testutil.Exists(t, root, "orders/pom.xml"), "no rollback")
	})

	t.Run("skipped in dry run", func(t *testing.T) {
		logs := captureLogs(t)
		root := testutil.TemplateProject(t)

		summary, err := newOrchestrator(root, "orders",
			withBuild(`sh -c "exit 1"`, true)).Run(context.Background())

		require.NoError(t, err)
		assert.False(t, summary.Built)
		assert.Contains(t, logs.String(), "skipping build in dry run")
	})
}
