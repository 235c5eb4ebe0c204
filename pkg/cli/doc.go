// Package cli implements the nodefacts command-line interface.
//
// # Overview
//
// nodefacts resolves facts about the local machine and prints them. Facts come
// from built-in resolvers (processor, memory, kernel, os, systemd), from
// operator-supplied files in the external fact directories and from
// NODEFACTS_FACT_* environment variables. External and environment facts take
// precedence: a built-in resolver never replaces a fact that already exists.
//
// # Usage
//
//	nodefacts [flags] [fact-name-or-pattern...]
//
// Without arguments every fact is printed. Arguments select facts:
//
//	nodefacts processor_count          # flat fact
//	nodefacts 'processor*'             # wildcard over fact names
//	nodefacts processors.models.0      # dotted path into a structured fact
//	nodefacts systemd.units.kubelet.service.active
//
// # Flags
//
//	--format, -t        json (default), yaml, table or cbor
//	--output, -o        output file (default: stdout)
//	--config, -c        YAML or JSON configuration file
//	--external-dir      external fact directory (repeatable)
//	--blocklist         resolver group to skip (repeatable, wildcards allowed)
//	--systemd-service   unit reported under systemd.units (repeatable)
//	--metrics-file      Prometheus textfile for resolver metrics
//	--log-level         debug, info, warn or error
//	--proc-path         procfs mount point (default: /proc)
//	--sys-path          sysfs mount point (default: /sys)
//
// Every flag can also be set through an environment variable named after it,
// e.g. NODEFACTS_FORMAT or NODEFACTS_SYSTEMD_SERVICE. Explicit flags override
// values from the configuration file.
//
// # Exit Status
//
// The command exits non-zero when the configuration is invalid, output cannot
// be written, resolution does not finish within the deadline, or any resolver
// reported a defect. In the last case the facts that did resolve are still
// printed first.
package cli
