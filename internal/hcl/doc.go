// Package hcl loads matrix configuration from HCL files and translates
// it into the format-agnostic config model. The format:
//
//	matrix {
//	  cache = "/var/cache/pip"
//
//	  axis "python" {
//	    values = ["2.7", "3.6", "3.7", "3.8", "3.9"]
//	  }
//
//	  env = {
//	    DEPENDS      = "numpy scipy"
//	    INSTALL_TYPE = "direct"
//	  }
//
//	  job {
//	    value    = "2.7"
//	    env      = { COVERAGE = "1" }
//	    packages = ["libhdf5-dev"]
//	  }
//	}
//
// Environment values may be written as strings, numbers, or booleans;
// they are converted to strings, since a job environment is textual.
package hcl
