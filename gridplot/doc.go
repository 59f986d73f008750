//Package gridplot draws phase maps of converted scans with gonum/plot.
package gridplot
