// Package plan builds the ordered list of edits that turn the template
// project into a named module.
package plan

import (
	"path"
	"strings"

	"github.com/vivekraman/modsetup/internal/config"
	"github.com/vivekraman/modsetup/internal/edit"
	"github.com/vivekraman/modsetup/internal/naming"
)

// Kind is the kind of edit a Step performs.
type Kind string

const (
	// KindRewrite applies a find/replace rule to a file or directory tree.
	KindRewrite Kind = "rewrite"

	// KindRename renames a file or directory to NewName in place.
	KindRename Kind = "rename"
)

// Stage titles, in execution order.
const (
	StageVersions      = "Updating version numbers"
	StageParentIDs     = "Updating parent artifact IDs"
	StageModuleIDs     = "Updating module artifact IDs"
	StageModules       = "Updating modules and dependencies"
	StageArtifactProps = "Updating artifact properties"
	StagePackages      = "Updating package declarations"
	StageImports       = "Updating package imports"
	StageClasses       = "Updating classes"
	StageProperties    = "Updating properties"
	StageRenameClasses = "Renaming classes"
	StageRenameDirs    = "Renaming class directories"
	StageRenameRes     = "Renaming resources"
	StageRenameModules = "Renaming modules"
)

// Stages lists every stage title in execution order.
var Stages = []string{
	StageVersions,
	StageParentIDs,
	StageModuleIDs,
	StageModules,
	StageArtifactProps,
	StagePackages,
	StageImports,
	StageClasses,
	StageProperties,
	StageRenameClasses,
	StageRenameDirs,
	StageRenameRes,
	StageRenameModules,
}

// versionPattern matches the project's own release versions (e.g. 0.9-rc3).
const versionPattern = `<version>[rc\d\-\.]+</version>`

// Step is one edit in the plan.
type Step struct {
	// Stage is the title of the stage the step belongs to.
	Stage string `json:"stage" yaml:"stage"`

	// Kind is rewrite or rename.
	Kind Kind `json:"kind" yaml:"kind"`

	// Path is slash-separated and relative to the project root.
	Path string `json:"path" yaml:"path"`

	// Rule is the find/replace rule of a rewrite step.
	Rule edit.Rule `json:"rule,omitempty" yaml:"rule,omitempty"`

	// NewName is the new leaf name of a rename step. It may contain "/".
	NewName string `json:"newName,omitempty" yaml:"newName,omitempty"`
}

// Build returns the ordered steps for renaming the template to names.
// cfg supplies versions and the template layout; nil means defaults.
//
// Every rewrite precedes every rename, and each rename of a file precedes
// the rename of a directory containing it, so that paths computed up
// front stay valid while the plan executes.
func Build(names naming.Names, cfg *config.Config) []Step {
	cfg = cfg.WithDefaults()
	l := cfg.Layout
	name := names.Name

	rootPOM := "pom.xml"
	appPOM := path.Join(l.AppModule, "pom.xml")
	templatePOM := path.Join(l.TemplateModule, "pom.xml")
	appSrc := l.AppModule + "/src/"
	templateSrc := l.TemplateModule + "/src/"

	placeholder := naming.Derive(l.Placeholder)
	groupDir := strings.ReplaceAll(l.GroupPackage, ".", "/")
	oldPackage := l.GroupPackage + "." + l.Placeholder
	newPackage := l.GroupPackage + "." + names.Package

	prefixClass := naming.Derive(l.ArtifactPrefix).UpperCamel
	oldAppClass := prefixClass + naming.Derive(l.TemplateModule).UpperCamel + "Application"
	newAppClass := prefixClass + names.UpperCamel + "Application"
	oldConfigClass := placeholder.UpperCamel + "Config"
	newConfigClass := names.UpperCamel + "Config"

	oldArtifact := l.ArtifactPrefix + "-" + l.TemplateModule
	newArtifact := l.ArtifactPrefix + "-" + name
	appArtifact := name + "-app"

	var steps []Step
	rewrite := func(stage, p string, rule edit.Rule) {
		steps = append(steps, Step{Stage: stage, Kind: KindRewrite, Path: p, Rule: rule})
	}
	literal := func(stage, p, find, replace string) {
		rewrite(stage, p, edit.Rule{Pattern: find, Replacement: replace, Literal: true})
	}
	rename := func(stage, p, newName string) {
		steps = append(steps, Step{Stage: stage, Kind: KindRename, Path: p, NewName: newName})
	}
	tag := func(t, v string) string {
		return "<" + t + ">" + v + "</" + t + ">"
	}

	versionRule := edit.Rule{
		Pattern:     versionPattern,
		Replacement: tag("version", cfg.Versions.Target),
	}
	for _, p := range []string{appPOM, templatePOM, rootPOM} {
		rewrite(StageVersions, p, versionRule)
	}
	rewrite(StageVersions, rootPOM, edit.Rule{
		Pattern:     tag("artifactId", "spring-boot-starter-parent") + `\n\t\t` + versionPattern,
		Replacement: tag("artifactId", "spring-boot-starter-parent") + "\n\t\t" + tag("version", cfg.Versions.SpringBoot),
	})

	for _, p := range []string{appPOM, templatePOM, rootPOM} {
		literal(StageParentIDs, p, tag("artifactId", oldArtifact), tag("artifactId", newArtifact))
	}

	literal(StageModuleIDs, appPOM, tag("artifactId", l.AppModule), tag("artifactId", appArtifact))
	literal(StageModuleIDs, templatePOM, tag("artifactId", l.TemplateModule), tag("artifactId", name))

	literal(StageModules, appPOM, tag("artifactId", l.TemplateModule), tag("artifactId", name))
	literal(StageModules, rootPOM, tag("module", l.TemplateModule), tag("module", name))
	literal(StageModules, rootPOM, tag("module", l.AppModule), tag("module", appArtifact))
	literal(StageModules, rootPOM, tag("artifactId", l.TemplateModule), tag("artifactId", name))

	literal(StageArtifactProps, rootPOM, tag("name", oldArtifact), tag("name", newArtifact))

	for _, p := range []string{appSrc, templateSrc} {
		literal(StagePackages, p, "package "+oldPackage, "package "+newPackage)
	}
	for _, p := range []string{appSrc, templateSrc} {
		literal(StageImports, p, "import "+oldPackage, "import "+newPackage)
	}

	literal(StageClasses, templateSrc,
		"public GroupedOpenApi "+placeholder.LowerCamel+"ApiGroup()",
		"public GroupedOpenApi "+names.LowerCamel+"ApiGroup()")
	literal(StageClasses, templateSrc,
		`.packagesToScan("`+oldPackage+`.controller")`,
		`.packagesToScan("`+newPackage+`.controller")`)
	literal(StageClasses, templateSrc,
		"public class "+oldConfigClass,
		"public class "+newConfigClass)
	literal(StageClasses, templateSrc,
		`String MODULE_NAME = "`+l.Placeholder+`";`,
		`String MODULE_NAME = "`+name+`";`)
	literal(StageClasses, appSrc,
		"public class "+oldAppClass,
		"public class "+newAppClass)
	literal(StageClasses, appSrc,
		"SpringApplication.run("+oldAppClass+".class, args)",
		"SpringApplication.run("+newAppClass+".class, args)")

	literal(StageProperties, appSrc,
		"spring.profiles.include="+l.Placeholder,
		"spring.profiles.include="+name)

	templateJava := path.Join(l.TemplateModule, "src/main/java", groupDir, l.Placeholder)
	appJava := path.Join(l.AppModule, "src/main/java", groupDir, l.Placeholder)
	appTestJava := path.Join(l.AppModule, "src/test/java", groupDir, l.Placeholder)

	rename(StageRenameClasses, path.Join(templateJava, "config", oldConfigClass+".java"), newConfigClass+".java")
	rename(StageRenameClasses, path.Join(appJava, "app", oldAppClass+".java"), newAppClass+".java")

	rename(StageRenameDirs, appJava, names.Directory)
	rename(StageRenameDirs, appTestJava, names.Directory)
	rename(StageRenameDirs, templateJava, names.Directory)

	rename(StageRenameRes,
		path.Join(l.AppModule, "src/main/resources", "application-"+l.Placeholder+".properties"),
		"application-"+name+".properties")

	rename(StageRenameModules, l.TemplateModule, name)
	rename(StageRenameModules, l.AppModule, appArtifact)

	return steps
}
