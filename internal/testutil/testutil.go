// Package testutil provides test helpers, including a miniature copy of the
// Maven template tree that modsetup rewrites.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of dir/name, failing the test on error.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

// Exists reports whether dir/name exists.
func Exists(t *testing.T, dir, name string) bool {
	t.Helper()
	_, err := os.Lstat(filepath.Join(dir, filepath.FromSlash(name)))
	return err == nil
}

// Snapshot returns every regular file beneath root keyed by slash-separated
// relative path, for before/after comparisons.
func Snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to snapshot %s: %v", root, err)
	}
	return files
}

// Template file paths relative to the project root.
const (
	RootPOM            = "pom.xml"
	AppPOM             = "module-app/pom.xml"
	TemplatePOM        = "template/pom.xml"
	AppMainClass       = "module-app/src/main/java/dev/vivekraman/module/app/BackendModuleTemplateApplication.java"
	AppTestClass       = "module-app/src/test/java/dev/vivekraman/module/app/BackendModuleTemplateApplicationTests.java"
	AppProperties      = "module-app/src/main/resources/application.properties"
	AppModuleProps     = "module-app/src/main/resources/application-module.properties"
	TemplateConfig     = "template/src/main/java/dev/vivekraman/module/config/ModuleConfig.java"
	TemplateConstants  = "template/src/main/java/dev/vivekraman/module/config/Constants.java"
	TemplateController = "template/src/main/java/dev/vivekraman/module/controller/TestController.java"
)

// TemplateFiles is the content of the template project keyed by path.
var TemplateFiles = map[string]string{
	RootPOM: `<?xml version="1.0" encoding="UTF-8"?>
<project>
	<modelVersion>4.0.0</modelVersion>
	<parent>
		<groupId>org.springframework.boot</groupId>
		<artifactId>spring-boot-starter-parent</artifactId>
		<version>3.0.2</version>
	</parent>
	<groupId>dev.vivekraman</groupId>
	<artifactId>backend-module-template</artifactId>
	<version>0.9-rc3</version>
	<name>backend-module-template</name>
	<packaging>pom</packaging>
	<modules>
		<module>template</module>
		<module>module-app</module>
	</modules>
	<dependencyManagement>
		<dependencies>
			<dependency>
				<groupId>dev.vivekraman</groupId>
				<artifactId>template</artifactId>
				<version>0.9-rc3</version>
			</dependency>
		</dependencies>
	</dependencyManagement>
</project>
`,
	AppPOM: `<?xml version="1.0" encoding="UTF-8"?>
<project>
	<modelVersion>4.0.0</modelVersion>
	<parent>
		<groupId>dev.vivekraman</groupId>
		<artifactId>backend-module-template</artifactId>
		<version>0.9-rc3</version>
	</parent>
	<artifactId>module-app</artifactId>
	<dependencies>
		<dependency>
			<groupId>dev.vivekraman</groupId>
			<artifactId>template</artifactId>
		</dependency>
	</dependencies>
</project>
`,
	TemplatePOM: `<?xml version="1.0" encoding="UTF-8"?>
<project>
	<modelVersion>4.0.0</modelVersion>
	<parent>
		<groupId>dev.vivekraman</groupId>
		<artifactId>backend-module-template</artifactId>
		<version>0.9-rc3</version>
	</parent>
	<artifactId>template</artifactId>
</project>
`,
	AppMainClass: `package dev.vivekraman.module.app;

import org.springframework.boot.SpringApplication;
import org.springframework.boot.autoconfigure.SpringBootApplication;

@SpringBootApplication(scanBasePackages = "dev.vivekraman.*")
public class BackendModuleTemplateApplication {
	public static void main(String[] args) {
		SpringApplication.run(BackendModuleTemplateApplication.class, args);
	}
}
`,
	AppTestClass: `package dev.vivekraman.module.app;

import org.junit.jupiter.api.Test;
import org.springframework.boot.test.context.SpringBootTest;

@SpringBootTest
class BackendModuleTemplateApplicationTests {
	@Test
	void contextLoads() {
	}
}
`,
	AppProperties: `spring.application.name=module-app
spring.profiles.include=module
`,
	AppModuleProps: `server.servlet.context-path=/module
`,
	TemplateConfig: `package dev.vivekraman.module.config;

import org.springdoc.core.models.GroupedOpenApi;
import org.springframework.context.annotation.Bean;
import org.springframework.context.annotation.Configuration;

@Configuration
public class ModuleConfig {
  @Bean
  public GroupedOpenApi moduleApiGroup() {
    return GroupedOpenApi.builder()
        .group(Constants.MODULE_NAME)
        .packagesToScan("dev.vivekraman.module.controller")
        .build();
  }
}
`,
	TemplateConstants: `package dev.vivekraman.module.config;

public interface Constants {
  String MODULE_NAME = "module";
}
`,
	TemplateController: `package dev.vivekraman.module.controller;

import dev.vivekraman.module.config.Constants;
import dev.vivekraman.monolith.model.Response;
import lombok.RequiredArgsConstructor;
import org.springframework.web.bind.annotation.GetMapping;
import org.springframework.web.bind.annotation.RequestMapping;
import org.springframework.web.bind.annotation.RestController;
import reactor.core.publisher.Mono;
import reactor.core.scheduler.Scheduler;

@RestController
@RequestMapping("/" + Constants.MODULE_NAME)
@RequiredArgsConstructor
public class TestController {
  private final Scheduler scheduler;

  @GetMapping
  public Mono<Response<Boolean>> test() {
    return Mono.just(Response.of(true))
        .subscribeOn(scheduler);
  }
}
`,
}

// TemplateProject writes the template project into a fresh temp directory
// and returns its root.
func TemplateProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range TemplateFiles {
		WriteFile(t, root, name, content)
	}
	return root
}
