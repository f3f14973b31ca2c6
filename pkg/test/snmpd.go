// Copyright 2022 Praetorian Security, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package test

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"

	"github.com/chrizzn/snmpdash/pkg/snmp"
)

// Testcase describes an agent container to run against.
type Testcase struct {
	// Testcase description
	Description string

	// Agent port inside the container
	Port int

	// Docker container to run
	RunConfig dockertest.RunOptions
}

// DefaultAgent is a net-snmp container answering community "public".
var DefaultAgent = Testcase{
	Description: "net-snmp",
	Port:        161,
	RunConfig: dockertest.RunOptions{
		Repository: "polinux/snmpd",
		Tag:        "latest",
	},
}

var dockerPool *dockertest.Pool

// RunAgent starts tc's container and returns options pointing at it once
// sysName.0 answers. The container is purged when t finishes.
func RunAgent(t *testing.T, tc Testcase) snmp.Options {
	t.Helper()
	var err error
	if dockerPool == nil {
		dockerPool, err = dockertest.NewPool("")
		require.NoError(t, err, "could not connect to docker")
	}
	resource, err := dockerPool.RunWithOptions(&tc.RunConfig)
	require.NoError(t, err, "could not start resource")
	t.Cleanup(func() { _ = dockerPool.Purge(resource) })

	port := resource.GetPort(fmt.Sprintf("%d/udp", tc.Port))
	portNum, err := strconv.ParseUint(port, 10, 16)
	require.NoError(t, err, "container did not publish %d/udp", tc.Port)

	opts := snmp.DefaultOptions()
	opts.Port = uint16(portNum)
	opts.Timeout = time.Second
	opts.Retries = 1

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	err = dockerPool.Retry(func() error {
		if ctx.Err() != nil {
			return fmt.Errorf("timeout waiting for container")
		}
		session, dialErr := snmp.Dial(ctx, opts, nil)
		if dialErr != nil {
			return dialErr
		}
		defer session.Close()
		cell, getErr := session.Get(snmp.OIDSysName)
		if getErr != nil {
			return getErr
		}
		if cell == nil {
			return fmt.Errorf("%s not served yet", snmp.OIDSysName)
		}
		return nil
	})
	require.NoError(t, err, "failed to reach agent in container")
	return opts
}
