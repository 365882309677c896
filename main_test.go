package main_test

import (
	"encoding/json"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
	"github.com/onsi/gomega/ghttp"
)

const (
	testpwPrefix = "05E03"
	testpwSuffix = "7C57CDC9FE20F7A97C5AF652A0F84ACB8F9"
)

var _ = Describe("Main", func() {
	var (
		cmdArgs []string
		stdin   string
		session *gexec.Session
		server  *ghttp.Server
	)

	BeforeEach(func() {
		stdin = ""
		cmdArgs = []string{"--no-color"}
		server = ghttp.NewServer()
	})

	AfterEach(func() {
		server.Close()
	})

	run := func(command string) {
		finalArgs := append([]string{command}, cmdArgs...)
		cmd := exec.Command(cliPath, finalArgs...)

		if stdin != "" {
			cmd.Stdin = strings.NewReader(stdin)
		}

		var err error
		session, err = gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())
	}

	Describe("AnalyzeCommand", func() {
		JustBeforeEach(func() {
			run("analyze")
		})

		Context("when given a strong password on stdin", func() {
			BeforeEach(func() {
				stdin = "K7v$Tq2!Lm9#Zp4@Wx1&\n"
			})

			It("reports the strength", func() {
				Eventually(session.Out).Should(gbytes.Say("Strength: Strong"))
				Eventually(session.Out).Should(gbytes.Say("Score: 100/100"))
				Eventually(session.Out).Should(gbytes.Say("Length: 20 characters"))
				Eventually(session.Out).Should(gbytes.Say("Character types: 4"))
				Eventually(session.Out).Should(gbytes.Say("meets all criteria"))
			})

			It("exits with status 0", func() {
				Eventually(session).Should(gexec.Exit(0))
			})

			It("does not make any network requests", func() {
				Eventually(session).Should(gexec.Exit(0))
				Expect(server.ReceivedRequests()).To(BeEmpty())
			})
		})

		Context("when given a weak password as a flag", func() {
			BeforeEach(func() {
				cmdArgs = append(cmdArgs, "--password", "password")
			})

			It("warns about the dictionary match", func() {
				Eventually(session.Out).Should(gbytes.Say("Strength: Weak"))
				Eventually(session.Out).Should(gbytes.Say("common weak passwords list"))
				Eventually(session.Out).Should(gbytes.Say("Choose a more unique password"))
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("when given a password with patterns", func() {
			BeforeEach(func() {
				cmdArgs = append(cmdArgs, "-p", "qwertyuiop123")
			})

			It("lists the detected patterns", func() {
				Eventually(session.Out).Should(gbytes.Say("Common patterns detected: Keyboard pattern"))
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("when given nothing", func() {
			It("reports the password as not analyzed", func() {
				Eventually(session.Out).Should(gbytes.Say("Strength: Not Analyzed"))
				Eventually(session.Out).Should(gbytes.Say("Score: 0/100"))
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("when checking breaches", func() {
			BeforeEach(func() {
				stdin = "testpw\n"
				cmdArgs = append(cmdArgs, "--check-breach", "--range-url", server.URL()+"/range")
			})

			Context("and the password is breached", func() {
				BeforeEach(func() {
					server.AppendHandlers(
						ghttp.CombineHandlers(
							ghttp.VerifyRequest("GET", "/range/"+testpwPrefix),
							ghttp.VerifyHeaderKV("User-Agent", "pw-alert"),
							ghttp.RespondWith(http.StatusOK, "0018A45C4D1DEF81644B54AB7F969B88D65:1\r\n"+testpwSuffix+":42\r\n"),
						),
					)
				})

				It("reports the breach and the adjusted score", func() {
					Eventually(session.Out).Should(gbytes.Say(`\[PWNED\]`))
					Eventually(session.Out).Should(gbytes.Say("Occurrences: 42"))
					Eventually(session.Out).Should(gbytes.Say("MINIMAL"))
					Eventually(session.Out).Should(gbytes.Say("Adjusted score"))
					Eventually(session.Out).Should(gbytes.Say("CHANGE IMMEDIATELY"))
				})

				It("exits with status 3", func() {
					Eventually(session).Should(gexec.Exit(3))
				})

				It("only sends the hash prefix", func() {
					Eventually(session).Should(gexec.Exit(3))

					Expect(server.ReceivedRequests()).To(HaveLen(1))
					request := server.ReceivedRequests()[0]
					Expect(request.URL.RawQuery).To(BeEmpty())
					Expect(request.URL.Path).NotTo(ContainSubstring("testpw"))
					for _, values := range request.Header {
						for _, value := range values {
							Expect(value).NotTo(ContainSubstring("testpw"))
							Expect(value).NotTo(ContainSubstring(testpwSuffix[:5]))
						}
					}
				})
			})

			Context("and the password is not breached", func() {
				BeforeEach(func() {
					server.AppendHandlers(
						ghttp.CombineHandlers(
							ghttp.VerifyRequest("GET", "/range/"+testpwPrefix),
							ghttp.RespondWith(http.StatusOK, "0018A45C4D1DEF81644B54AB7F969B88D65:1\r\n"),
						),
					)
				})

				It("reports the password as clean", func() {
					Eventually(session.Out).Should(gbytes.Say(`\[CLEAN\]`))
					Eventually(session).Should(gexec.Exit(0))
				})
			})

			Context("and the range service fails", func() {
				BeforeEach(func() {
					server.AppendHandlers(ghttp.RespondWith(http.StatusServiceUnavailable, ""))
				})

				It("still reports the strength", func() {
					Eventually(session.Out).Should(gbytes.Say("Strength: "))
				})

				It("reports the status as unknown rather than clean", func() {
					Eventually(session.Out).Should(gbytes.Say(`\[UNKNOWN\]`))
					Consistently(session.Out).ShouldNot(gbytes.Say(`\[CLEAN\]`))
				})

				It("exits with status 1", func() {
					Eventually(session).Should(gexec.Exit(1))
					Expect(session.Err).To(gbytes.Say("unable to determine breach status"))
				})
			})

			Context("and JSON output is requested", func() {
				BeforeEach(func() {
					cmdArgs = append(cmdArgs, "--json")
					server.AppendHandlers(ghttp.RespondWith(http.StatusOK, testpwSuffix+":42\n"))
				})

				It("prints the analysis and breach status as JSON", func() {
					Eventually(session).Should(gexec.Exit(3))

					var report struct {
						Analysis struct {
							Score    int    `json:"score"`
							Category string `json:"category"`
							Breached bool   `json:"breached"`
						} `json:"analysis"`
						Breach struct {
							Status      string `json:"status"`
							Pwned       bool   `json:"pwned"`
							Occurrences int64  `json:"occurrences"`
						} `json:"breach"`
					}
					Expect(json.Unmarshal(session.Out.Contents(), &report)).To(Succeed())

					Expect(report.Analysis.Breached).To(BeTrue())
					Expect(report.Breach.Status).To(Equal("pwned"))
					Expect(report.Breach.Pwned).To(BeTrue())
					Expect(report.Breach.Occurrences).To(Equal(int64(42)))
				})
			})

			Context("and the configuration is invalid", func() {
				BeforeEach(func() {
					cmdArgs = append(cmdArgs, "--connect-timeout", "1m")
				})

				It("exits with status 1 without querying", func() {
					Eventually(session).Should(gexec.Exit(1))
					Expect(session.Err).To(gbytes.Say("connect timeout"))
					Expect(server.ReceivedRequests()).To(BeEmpty())
				})
			})
		})

		Context("when given a config file", func() {
			var configDir string

			BeforeEach(func() {
				var err error
				configDir, err = os.MkdirTemp("", "pw-alert-config")
				Expect(err).NotTo(HaveOccurred())

				configPath := filepath.Join(configDir, "config.yml")
				err = os.WriteFile(configPath, []byte("range_url: "+server.URL()+"/range\nuser_agent: from-config\nadd_padding: true\n"), 0600)
				Expect(err).NotTo(HaveOccurred())

				stdin = "testpw"
				cmdArgs = append(cmdArgs, "--check-breach", "--config-file", configPath)

				server.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("GET", "/range/"+testpwPrefix),
						ghttp.VerifyHeaderKV("User-Agent", "from-config"),
						ghttp.VerifyHeaderKV("Add-Padding", "true"),
						ghttp.RespondWith(http.StatusOK, testpwSuffix+":0\n"),
					),
				)
			})

			AfterEach(func() {
				Expect(os.RemoveAll(configDir)).To(Succeed())
			})

			It("uses it", func() {
				Eventually(session.Out).Should(gbytes.Say(`\[CLEAN\]`))
				Eventually(session).Should(gexec.Exit(0))
			})
		})
	})

	Describe("CheckCommand", func() {
		JustBeforeEach(func() {
			run("check")
		})

		BeforeEach(func() {
			cmdArgs = append(cmdArgs, "--range-url", server.URL()+"/range", "--concurrency", "2")
			server.SetAllowUnhandledRequests(true)
			server.RouteToHandler("GET", "/range/"+testpwPrefix, ghttp.RespondWith(http.StatusOK, testpwSuffix+":12345\n"))
			server.RouteToHandler("GET", "/range/5BAA6", ghttp.RespondWith(http.StatusOK, "0018A45C4D1DEF81644B54AB7F969B88D65:1\n"))
		})

		Context("when some passwords are breached", func() {
			BeforeEach(func() {
				stdin = "testpw\n\npassword\n"
			})

			It("reports each line in order", func() {
				Eventually(session.Out).Should(gbytes.Say(`\[PWNED\] line 1: 12345 occurrences, severity HIGH`))
				Eventually(session.Out).Should(gbytes.Say(`\[CLEAN\] line 3`))
			})

			It("exits with status 3", func() {
				Eventually(session).Should(gexec.Exit(3))
			})

			It("never prints the passwords", func() {
				Eventually(session).Should(gexec.Exit(3))
				Expect(string(session.Out.Contents())).NotTo(ContainSubstring("testpw"))
			})
		})

		Context("when the range service fails for a prefix", func() {
			BeforeEach(func() {
				stdin = "password\nhunter2\n"
			})

			It("reports that line as unknown and exits with status 1", func() {
				Eventually(session.Out).Should(gbytes.Say(`\[CLEAN\] line 1`))
				Eventually(session.Out).Should(gbytes.Say(`\[UNKNOWN\] line 2`))
				Eventually(session).Should(gexec.Exit(1))
			})
		})
	})

	Describe("VersionCommand", func() {
		It("prints the version", func() {
			cmdArgs = []string{}
			run("version")
			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).Should(gbytes.Say("dev"))
		})
	})
})
